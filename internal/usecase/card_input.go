package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlenaMolokova/cardform/internal/card"
	"github.com/AlenaMolokova/cardform/internal/models"
	"go.uber.org/zap"
)

var ErrInvalidExpiry = errors.New("invalid expiry date")

type CardInputUseCase struct {
	validator   *card.Validator
	iconBaseURL string
	now         func() time.Time
	log         *zap.Logger
}

func NewCardInputUseCase(validator *card.Validator, iconBaseURL string, log *zap.Logger) *CardInputUseCase {
	return &CardInputUseCase{
		validator:   validator,
		iconBaseURL: iconBaseURL,
		now:         time.Now,
		log:         log,
	}
}

// WithClock replaces the clock used for expiry checks.
func (uc *CardInputUseCase) WithClock(now func() time.Time) *CardInputUseCase {
	uc.now = now
	return uc
}

// OnInput handles one keystroke in the card-number field.
func (uc *CardInputUseCase) OnInput(ctx context.Context, req models.InputRequest) models.InputResponse {
	digits := card.StripNonDigits(req.Value)
	brand := uc.validator.Detect(digits)
	formatted := uc.validator.Format(digits, brand)

	resp := models.InputResponse{
		Brand:          brand,
		FormattedValue: formatted,
		Cursor:         card.RecalculateCursor(req.Value, formatted, req.Cursor),
		MaxLength:      uc.validator.MaxInputLength(brand),
		CVV:            uc.validator.AdjustCVV(req.CVV, brand),
		CVVLength:      uc.validator.CVVLength(brand),
		CVVPlaceholder: uc.validator.CVVPlaceholder(brand),
		State:          uc.validator.InputState(digits, brand),
		Icon:           uc.iconURL(brand),
	}
	if rule, ok := uc.validator.Rule(brand); ok {
		resp.BrandName = rule.Name
	}

	uc.log.Debug("card input",
		zap.String("pan", card.MaskPAN(digits)),
		zap.String("brand", string(brand)),
		zap.String("state", string(resp.State)),
	)
	return resp
}

// OnBlur runs the full validation when the card-number field loses focus.
func (uc *CardInputUseCase) OnBlur(ctx context.Context, value string) card.ValidationResult {
	digits := card.StripNonDigits(value)
	res := uc.validator.Validate(digits, uc.validator.Detect(digits))

	if digits != "" {
		uc.log.Info("card validated",
			zap.String("pan", card.MaskPAN(digits)),
			zap.String("brand", string(res.Brand)),
			zap.Bool("accepted", res.Accepted),
			zap.String("message", res.Message),
		)
	}
	return res
}

// OnExpiryInput formats the expiry field and, once a full MM/YY is present,
// checks it against the current month.
func (uc *CardInputUseCase) OnExpiryInput(ctx context.Context, req models.ExpiryRequest) (models.ExpiryResponse, error) {
	state := card.FormatExpiry(req.Value, req.Cursor)
	resp := models.ExpiryResponse{ExpiryState: state}

	if len(state.FormattedValue) < len("MM/YY") {
		return resp, nil
	}
	resp.Complete = true

	if err := card.ValidateExpiry(state.FormattedValue, uc.now()); err != nil {
		return resp, fmt.Errorf("%w: %w", ErrInvalidExpiry, err)
	}
	return resp, nil
}

func (uc *CardInputUseCase) Brands(ctx context.Context) []models.BrandInfo {
	rules := uc.validator.Brands()
	out := make([]models.BrandInfo, 0, len(rules))
	for _, r := range rules {
		out = append(out, models.BrandInfo{
			ID:           r.ID,
			Name:         r.Name,
			ValidLengths: r.ValidLengths,
			CVVLength:    r.CVVLength,
			GroupFormat:  r.GroupFormat,
			MaxLength:    uc.validator.MaxInputLength(r.ID),
			Icon:         uc.iconURL(r.ID),
		})
	}
	return out
}

func (uc *CardInputUseCase) iconURL(brand card.BrandID) string {
	icon := uc.validator.Icon(brand)
	if icon == "" {
		return ""
	}
	return uc.iconBaseURL + "/" + icon
}
