package testutils

import (
	"context"

	"github.com/AlenaMolokova/cardform/internal/card"
	"github.com/AlenaMolokova/cardform/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockCardInputService struct {
	mock.Mock
}

func (m *MockCardInputService) OnInput(ctx context.Context, req models.InputRequest) models.InputResponse {
	args := m.Called(ctx, req)
	return args.Get(0).(models.InputResponse)
}

func (m *MockCardInputService) OnBlur(ctx context.Context, value string) card.ValidationResult {
	args := m.Called(ctx, value)
	return args.Get(0).(card.ValidationResult)
}

func (m *MockCardInputService) OnExpiryInput(ctx context.Context, req models.ExpiryRequest) (models.ExpiryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.ExpiryResponse), args.Error(1)
}

func (m *MockCardInputService) Brands(ctx context.Context) []models.BrandInfo {
	args := m.Called(ctx)
	return args.Get(0).([]models.BrandInfo)
}
