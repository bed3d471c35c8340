package handlers

import (
	"context"

	"github.com/AlenaMolokova/cardform/internal/card"
	"github.com/AlenaMolokova/cardform/internal/models"
)

type CardInputService interface {
	OnInput(ctx context.Context, req models.InputRequest) models.InputResponse
	OnBlur(ctx context.Context, value string) card.ValidationResult
	OnExpiryInput(ctx context.Context, req models.ExpiryRequest) (models.ExpiryResponse, error)
	Brands(ctx context.Context) []models.BrandInfo
}

type RequestValidator interface {
	ValidateRequest(req any) error
}
