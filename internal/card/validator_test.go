package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestValidator() *Validator {
	return NewValidator(DefaultBrands())
}

func TestDetect(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name     string
		digits   string
		expected BrandID
	}{
		{name: "empty", digits: "", expected: Unknown},
		{name: "visa single digit", digits: "4", expected: Visa},
		{name: "visa full", digits: "4539148803436467", expected: Visa},
		{name: "mastercard 5x", digits: "51", expected: MasterCard},
		{name: "mastercard 2x", digits: "2223003122003222", expected: MasterCard},
		{name: "mastercard needs second digit", digits: "5", expected: Unknown},
		{name: "mastercard out of range", digits: "56", expected: Unknown},
		{name: "amex 34", digits: "34", expected: Amex},
		{name: "amex 37", digits: "378282246310005", expected: Amex},
		{name: "discover 6011", digits: "6011", expected: Discover},
		{name: "discover 62", digits: "62", expected: Discover},
		{name: "discover 644", digits: "644", expected: Discover},
		{name: "discover 65", digits: "65", expected: Discover},
		{name: "60 alone is not discover", digits: "60", expected: Unknown},
		{name: "643 is not discover", digits: "643", expected: Unknown},
		{name: "unknown prefix", digits: "9999", expected: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Detect(tt.digits))
			assert.Equal(t, tt.expected, v.Detect(tt.digits), "detection must be deterministic")
		})
	}
}

func TestDetectFirstMatchWins(t *testing.T) {
	brands := DefaultBrands()
	overlap := brands[0]
	overlap.ID = "visa-copy"
	v := NewValidator(append(brands, overlap))

	assert.Equal(t, Visa, v.Detect("4111"))
}

func TestFormat(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name     string
		digits   string
		brand    BrandID
		expected string
	}{
		{name: "empty", digits: "", brand: Visa, expected: ""},
		{name: "visa partial", digits: "41111", brand: Visa, expected: "4111 1"},
		{name: "visa full", digits: "4111111111111111", brand: Visa, expected: "4111 1111 1111 1111"},
		{name: "visa 19 digits", digits: "4111111111111111110", brand: Visa, expected: "4111 1111 1111 1111 110"},
		{name: "amex first group", digits: "3782", brand: Amex, expected: "3782"},
		{name: "amex second group partial", digits: "37828", brand: Amex, expected: "3782 8"},
		{name: "amex two groups", digits: "3782822463", brand: Amex, expected: "3782 822463"},
		{name: "amex full", digits: "378282246310005", brand: Amex, expected: "3782 822463 10005"},
		{name: "unknown uses fours", digits: "123456789", brand: Unknown, expected: "1234 5678 9"},
		{name: "separators in input are ignored", digits: "4111-1111 11", brand: Visa, expected: "4111 1111 11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Format(tt.digits, tt.brand))
		})
	}
}

func TestFormatRoundTripAndIdempotence(t *testing.T) {
	v := newTestValidator()
	brands := []BrandID{Visa, MasterCard, Amex, Discover, Unknown}

	for n := 0; n <= 25; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(byte('0' + (i*7+3)%10))
		}
		digits := b.String()

		for _, brand := range brands {
			formatted := v.Format(digits, brand)
			assert.Equal(t, digits, StripNonDigits(formatted), "round trip for %s len %d", brand, n)
			assert.Equal(t, formatted, v.Format(StripNonDigits(formatted), brand), "idempotence for %s len %d", brand, n)
			assert.NotContains(t, formatted, "  ")
			assert.False(t, strings.HasPrefix(formatted, " ") || strings.HasSuffix(formatted, " "))
		}
	}
}

func TestMaxInputLength(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		brand    BrandID
		expected int
	}{
		{brand: Amex, expected: 15 + 2},
		{brand: MasterCard, expected: 16 + 3},
		{brand: Visa, expected: 19 + 3},
		{brand: Discover, expected: 19 + 3},
		{brand: Unknown, expected: DefaultMaxInputLength},
	}

	for _, tt := range tests {
		t.Run(string(tt.brand), func(t *testing.T) {
			assert.Equal(t, tt.expected, v.MaxInputLength(tt.brand))
		})
	}
}

func TestCVVPolicy(t *testing.T) {
	v := newTestValidator()

	assert.Equal(t, 4, v.CVVLength(Amex))
	assert.Equal(t, 3, v.CVVLength(Visa))
	assert.Equal(t, 3, v.CVVLength(MasterCard))
	assert.Equal(t, 3, v.CVVLength(Discover))
	assert.Equal(t, 3, v.CVVLength(Unknown))

	assert.Equal(t, "0000", v.CVVPlaceholder(Amex))
	assert.Equal(t, "000", v.CVVPlaceholder(Visa))
	assert.Equal(t, "123", v.CVVPlaceholder(Unknown))

	tests := []struct {
		name     string
		cvv      string
		brand    BrandID
		expected string
	}{
		{name: "amex keeps four", cvv: "1234", brand: Amex, expected: "1234"},
		{name: "switch to visa truncates", cvv: "1234", brand: Visa, expected: "123"},
		{name: "unknown truncates", cvv: "1234", brand: Unknown, expected: "123"},
		{name: "short value untouched", cvv: "12", brand: Visa, expected: "12"},
		{name: "non digits dropped", cvv: "1a2b3", brand: Visa, expected: "123"},
		{name: "empty", cvv: "", brand: Amex, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.AdjustCVV(tt.cvv, tt.brand))
		})
	}
}

func TestInputStateAndIcon(t *testing.T) {
	v := newTestValidator()

	assert.Equal(t, StateNone, v.InputState("", Visa))
	assert.Equal(t, StateWarning, v.InputState("4111", Visa))
	assert.Equal(t, StateValid, v.InputState("4111111111111111", Visa))
	assert.Equal(t, StateNone, v.InputState("9999", Unknown))

	assert.Equal(t, "amex.svg", v.Icon(Amex))
	assert.Equal(t, "", v.Icon(Unknown))
}

func TestValidate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name        string
		digits      string
		brand       BrandID
		accepted    bool
		lengthValid bool
		luhnValid   bool
		state       State
		message     string
		formatted   string
	}{
		{
			name:        "visa valid",
			digits:      "4539148803436467",
			brand:       Visa,
			accepted:    true,
			lengthValid: true,
			luhnValid:   true,
			state:       StateValid,
			message:     "Visa valid",
			formatted:   "4539 1488 0343 6467",
		},
		{
			name:        "visa 16 ones",
			digits:      "4111111111111111",
			brand:       Visa,
			accepted:    true,
			lengthValid: true,
			luhnValid:   true,
			state:       StateValid,
			message:     "Visa valid",
			formatted:   "4111 1111 1111 1111",
		},
		{
			name:        "visa luhn failure",
			digits:      "4539148803436468",
			brand:       Visa,
			lengthValid: true,
			state:       StateError,
			message:     MsgInvalidNumber,
			formatted:   "4539 1488 0343 6468",
		},
		{
			name:      "visa wrong length",
			digits:    "411111111111111",
			brand:     Visa,
			state:     StateError,
			message:   "Visa must have 13 or 16 or 19 digits",
			formatted: "4111 1111 1111 111",
		},
		{
			name:      "mastercard wrong length",
			digits:    "555555555555444",
			brand:     MasterCard,
			state:     StateError,
			message:   "MasterCard must have 16 digits",
			formatted: "5555 5555 5555 444",
		},
		{
			name:        "amex valid",
			digits:      "378282246310005",
			brand:       Amex,
			accepted:    true,
			lengthValid: true,
			luhnValid:   true,
			state:       StateValid,
			message:     "American Express valid",
			formatted:   "3782 822463 10005",
		},
		{
			name:        "discover valid",
			digits:      "6011111111111117",
			brand:       Discover,
			accepted:    true,
			lengthValid: true,
			luhnValid:   true,
			state:       StateValid,
			message:     "Discover valid",
			formatted:   "6011 1111 1111 1117",
		},
		{
			name:      "unknown brand",
			digits:    "9999999999999995",
			brand:     Unknown,
			state:     StateError,
			message:   MsgNotRecognized,
			formatted: "9999 9999 9999 9995",
		},
		{
			name:      "empty input",
			digits:    "",
			brand:     Unknown,
			state:     StateNone,
			message:   "",
			formatted: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.digits, tt.brand)
			assert.Equal(t, tt.brand, res.Brand)
			assert.Equal(t, tt.accepted, res.Accepted)
			assert.Equal(t, tt.lengthValid, res.IsLengthValid)
			assert.Equal(t, tt.luhnValid, res.IsLuhnValid)
			assert.Equal(t, tt.state, res.State)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.formatted, res.FormattedValue)
		})
	}
}

func TestValidateLengthMessageCitesLength(t *testing.T) {
	v := newTestValidator()

	res := v.Validate("411111111111111", Visa)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Message, "16")
	assert.Contains(t, res.Message, "Visa")
}

func TestValidateUnknownNeverReportsLengthOrLuhn(t *testing.T) {
	v := newTestValidator()

	for _, digits := range []string{"9", "99", "0000000000000000", "1234567890123456789", "8"} {
		res := v.Validate(digits, v.Detect(digits))
		assert.Equal(t, MsgNotRecognized, res.Message, digits)
		assert.False(t, res.IsLengthValid)
		assert.False(t, res.IsLuhnValid)
	}
}

func TestValidateUsesDetectedBrand(t *testing.T) {
	v := newTestValidator()

	res := v.Validate("5555555555554444", Visa)
	assert.Equal(t, MasterCard, res.Brand)
	assert.Equal(t, "MasterCard valid", res.Message)

	res = v.Validate("9999999999999995", Visa)
	assert.Equal(t, Unknown, res.Brand)
	assert.Equal(t, MsgNotRecognized, res.Message)
}
