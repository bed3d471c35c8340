package models

import "github.com/AlenaMolokova/cardform/internal/card"

type InputRequest struct {
	Value  string `json:"value" validate:"max=64"`
	Cursor int    `json:"cursor" validate:"gte=0,lte=64"`
	CVV    string `json:"cvv" validate:"max=8"`
}

type InputResponse struct {
	Brand          card.BrandID `json:"brand"`
	BrandName      string       `json:"brand_name,omitempty"`
	FormattedValue string       `json:"formatted_value"`
	Cursor         int          `json:"cursor"`
	MaxLength      int          `json:"max_length"`
	CVV            string       `json:"cvv"`
	CVVLength      int          `json:"cvv_length"`
	CVVPlaceholder string       `json:"cvv_placeholder"`
	State          card.State   `json:"state"`
	Icon           string       `json:"icon"`
}

type ValidateRequest struct {
	Value string `json:"value" validate:"max=64"`
}

type ExpiryRequest struct {
	Value  string `json:"value" validate:"max=16"`
	Cursor int    `json:"cursor" validate:"gte=0,lte=16"`
}

type ExpiryResponse struct {
	card.ExpiryState
	Complete bool `json:"complete"`
}

type BrandInfo struct {
	ID           card.BrandID `json:"id"`
	Name         string       `json:"name"`
	ValidLengths []int        `json:"valid_lengths"`
	CVVLength    int          `json:"cvv_length"`
	GroupFormat  []int        `json:"group_format"`
	MaxLength    int          `json:"max_length"`
	Icon         string       `json:"icon"`
}
