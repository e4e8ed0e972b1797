package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/app/model"
	"github.com/skylineair/edge-services/internal/pkg/pnrstore"
)

// PnrRepository looks up the validation projection of a PNR record.
type PnrRepository interface {
	FindValidationDetails(ctx context.Context, id uuid.UUID) (model.PnrValidationDetails, error)
}

// TokenIssuer mints a signed access token for a validated PNR.
type TokenIssuer interface {
	Issue(subject uuid.UUID) (string, error)
}

// LoginService validates login details against the PNR database and issues
// access tokens.
type LoginService struct {
	Pnrs   PnrRepository
	Tokens TokenIssuer
}

func NewLoginService(pnrs PnrRepository, tokens TokenIssuer) *LoginService {
	return &LoginService{
		Pnrs:   pnrs,
		Tokens: tokens,
	}
}

// Login validates the PNR ID and names and, on a match, returns a signed
// access token with the PNR ID as subject. A missing record and a name
// mismatch are both reported as the same login failure.
func (s *LoginService) Login(ctx context.Context, req dto.LoginRequest) (dto.AccessToken, error) {
	pnr, err := s.Pnrs.FindValidationDetails(ctx, req.PnrID)
	if errors.Is(err, pnrstore.ErrPnrNotFound) {
		return dto.AccessToken{}, ErrLoginFailed
	}

	if err != nil {
		return dto.AccessToken{}, fmt.Errorf("validate login details: %w", err)
	}

	if !strings.EqualFold(pnr.Contact.FirstName, req.FirstName) ||
		!strings.EqualFold(pnr.Contact.Surname, req.Surname) {
		return dto.AccessToken{}, ErrLoginFailed
	}

	signed, err := s.Tokens.Issue(pnr.ID)
	if err != nil {
		return dto.AccessToken{}, fmt.Errorf("issue access token: %w", err)
	}

	return dto.AccessToken{Token: signed}, nil
}
