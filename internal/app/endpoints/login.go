package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/skylineair/edge-services/internal/app/dto"
)

// LoginService is the operation surface of the login service.
type LoginService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.AccessToken, error)
}

type LoginEndpoint struct {
	Login endpoint.Endpoint
}

func MakeLoginEndpoint(svc LoginService) LoginEndpoint {
	return LoginEndpoint{
		Login: makeLoginEndpoint(svc),
	}
}

func makeLoginEndpoint(svc LoginService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LoginRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		accessToken, err := svc.Login(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("login service: %w", err)
		}

		return accessToken, nil
	}
}
