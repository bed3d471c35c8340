// Package card implements the card-number input rules used by the checkout
// form: brand detection, live formatting, caret placement, CVV policy and the
// final length and Luhn checks. Nothing in this package performs I/O.
package card

import (
	"fmt"
	"strconv"
	"strings"
)

type State string

const (
	StateNone    State = ""
	StateValid   State = "valid"
	StateWarning State = "warning"
	StateError   State = "error"
)

const (
	MsgNotRecognized = "card not recognized"
	MsgInvalidNumber = "invalid card number"
)

type ValidationResult struct {
	Brand          BrandID `json:"brand"`
	FormattedValue string  `json:"formatted_value"`
	IsLengthValid  bool    `json:"is_length_valid"`
	IsLuhnValid    bool    `json:"is_luhn_valid"`
	Accepted       bool    `json:"accepted"`
	State          State   `json:"state"`
	Message        string  `json:"message"`
}

// Validator holds the brand table. It is read-only after NewValidator and
// safe for concurrent use.
type Validator struct {
	brands []BrandRule
	byID   map[BrandID]int
}

func NewValidator(brands []BrandRule) *Validator {
	v := &Validator{
		brands: brands,
		byID:   make(map[BrandID]int, len(brands)),
	}
	for i, b := range brands {
		v.byID[b.ID] = i
	}
	return v
}

func (v *Validator) Brands() []BrandRule {
	out := make([]BrandRule, len(v.brands))
	copy(out, v.brands)
	return out
}

func (v *Validator) Rule(id BrandID) (BrandRule, bool) {
	i, ok := v.byID[id]
	if !ok {
		return BrandRule{}, false
	}
	return v.brands[i], true
}

// Detect returns the first brand, in table order, with a pattern matching the
// leading digits.
func (v *Validator) Detect(digits string) BrandID {
	if digits == "" {
		return Unknown
	}
	for _, b := range v.brands {
		for _, p := range b.Patterns {
			if p.MatchString(digits) {
				return b.ID
			}
		}
	}
	return Unknown
}

// Format groups digits according to the brand layout. Digits past the end of
// the layout keep going in groups of four.
func (v *Validator) Format(digits string, brand BrandID) string {
	digits = StripNonDigits(digits)
	var groups []int
	if rule, ok := v.Rule(brand); ok {
		groups = rule.GroupFormat
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/DefaultGroupSize)
	rest := digits
	for i := 0; rest != ""; i++ {
		size := DefaultGroupSize
		if i < len(groups) && groups[i] > 0 {
			size = groups[i]
		}
		if size > len(rest) {
			size = len(rest)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(rest[:size])
		rest = rest[size:]
	}
	return b.String()
}

// MaxInputLength is the character cap for the card-number field: the longest
// accepted length plus one separator between each group of the layout.
func (v *Validator) MaxInputLength(brand BrandID) int {
	rule, ok := v.Rule(brand)
	if !ok {
		return DefaultMaxInputLength
	}
	return rule.MaxLength() + len(rule.GroupFormat) - 1
}

func (v *Validator) CVVLength(brand BrandID) int {
	if rule, ok := v.Rule(brand); ok && rule.CVVLength > 0 {
		return rule.CVVLength
	}
	return DefaultCVVLength
}

func (v *Validator) CVVPlaceholder(brand BrandID) string {
	if _, ok := v.Rule(brand); !ok {
		return "123"
	}
	return strings.Repeat("0", v.CVVLength(brand))
}

// AdjustCVV keeps the digits of cvv and cuts them to the length the brand
// requires.
func (v *Validator) AdjustCVV(cvv string, brand BrandID) string {
	cvv = StripNonDigits(cvv)
	if n := v.CVVLength(brand); len(cvv) > n {
		return cvv[:n]
	}
	return cvv
}

func (v *Validator) Icon(brand BrandID) string {
	if rule, ok := v.Rule(brand); ok {
		return rule.Icon
	}
	return ""
}

// InputState is the hint shown while typing: valid once the length is
// acceptable for the detected brand, warning before that.
func (v *Validator) InputState(digits string, brand BrandID) State {
	rule, ok := v.Rule(brand)
	if !ok || digits == "" {
		return StateNone
	}
	if rule.AcceptsLength(len(digits)) {
		return StateValid
	}
	return StateWarning
}

// Validate runs the blur/submit checks in order: brand, length, Luhn. brand
// is expected to be Detect(digits); any other value is replaced by the
// detected brand.
func (v *Validator) Validate(digits string, brand BrandID) ValidationResult {
	digits = StripNonDigits(digits)
	brand = v.Detect(digits)
	res := ValidationResult{
		Brand:          brand,
		FormattedValue: v.Format(digits, brand),
	}
	if digits == "" {
		return res
	}

	rule, ok := v.Rule(brand)
	if !ok {
		res.Brand = Unknown
		return reject(res, MsgNotRecognized)
	}

	if !rule.AcceptsLength(len(digits)) {
		return reject(res, lengthMessage(rule))
	}
	res.IsLengthValid = true

	if !Luhn(digits) {
		return reject(res, MsgInvalidNumber)
	}
	res.IsLuhnValid = true

	res.Accepted = true
	res.State = StateValid
	res.Message = fmt.Sprintf("%s valid", rule.Name)
	return res
}

func reject(res ValidationResult, msg string) ValidationResult {
	res.Accepted = false
	res.State = StateError
	res.Message = msg
	return res
}

func lengthMessage(rule BrandRule) string {
	lengths := make([]string, 0, len(rule.ValidLengths))
	for _, l := range rule.ValidLengths {
		lengths = append(lengths, strconv.Itoa(l))
	}
	return fmt.Sprintf("%s must have %s digits", rule.Name, strings.Join(lengths, " or "))
}
