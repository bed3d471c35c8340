package card

import (
	"errors"
	"strconv"
	"time"
)

var (
	ErrExpiryFormat = errors.New("expiry date must be MM/YY")
	ErrExpiryMonth  = errors.New("invalid expiry month")
	ErrCardExpired  = errors.New("card has expired")
)

type ExpiryState struct {
	FormattedValue string `json:"formatted_value"`
	Cursor         int    `json:"cursor"`
}

// FormatExpiry rewrites the expiry field as MM/YY while the user types. A
// leading digit above 1 can only be a single-digit month, so it gets a zero
// in front.
func FormatExpiry(value string, cursor int) ExpiryState {
	digits := StripNonDigits(value)
	if digits != "" && digits[0] > '1' {
		digits = "0" + digits
		value = "0" + value
		cursor++
	}

	formatted := digits
	if len(digits) > 2 {
		end := len(digits)
		if end > 4 {
			end = 4
		}
		formatted = digits[:2] + "/" + digits[2:end]
	}

	return ExpiryState{
		FormattedValue: formatted,
		Cursor:         RecalculateCursor(value, formatted, cursor),
	}
}

// ValidateExpiry checks a complete MM/YY value. A card stays valid through the
// last day of its expiry month.
func ValidateExpiry(value string, now time.Time) error {
	if len(value) != 5 || value[2] != '/' {
		return ErrExpiryFormat
	}
	mm, yy := value[:2], value[3:]
	if StripNonDigits(mm) != mm || StripNonDigits(yy) != yy {
		return ErrExpiryFormat
	}

	month, _ := strconv.Atoi(mm)
	if month < 1 || month > 12 {
		return ErrExpiryMonth
	}
	year, _ := strconv.Atoi(yy)
	year += 2000

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return ErrCardExpired
	}
	return nil
}
