//go:build unit

package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/model"
	"github.com/stretchr/testify/mock"
)

type MockInventoryQuerier struct {
	mock.Mock
}

func (m *MockInventoryQuerier) Query(
	ctx context.Context,
	query string,
	variables map[string]interface{},
) (json.RawMessage, error) {
	args := m.Called(ctx, query, variables)

	var data json.RawMessage
	if args.Get(0) != nil {
		data = args.Get(0).(json.RawMessage)
	}

	return data, args.Error(1)
}

type MockPnrRepository struct {
	mock.Mock
}

func (m *MockPnrRepository) FindValidationDetails(
	ctx context.Context,
	id uuid.UUID,
) (model.PnrValidationDetails, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(model.PnrValidationDetails), args.Error(1)
}
