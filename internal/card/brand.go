package card

import "regexp"

type BrandID string

const (
	Visa       BrandID = "visa"
	MasterCard BrandID = "mastercard"
	Amex       BrandID = "amex"
	Discover   BrandID = "discover"
	Unknown    BrandID = "unknown"
)

const (
	DefaultCVVLength      = 3
	DefaultGroupSize      = 4
	DefaultMaxInputLength = 23
)

type BrandRule struct {
	ID           BrandID
	Name         string
	Patterns     []*regexp.Regexp
	ValidLengths []int
	CVVLength    int
	GroupFormat  []int
	Icon         string
}

func (b BrandRule) AcceptsLength(n int) bool {
	for _, l := range b.ValidLengths {
		if l == n {
			return true
		}
	}
	return false
}

func (b BrandRule) MaxLength() int {
	max := 0
	for _, l := range b.ValidLengths {
		if l > max {
			max = l
		}
	}
	return max
}

// DefaultBrands returns the brand table in detection order.
func DefaultBrands() []BrandRule {
	return []BrandRule{
		{
			ID:           Visa,
			Name:         "Visa",
			Patterns:     []*regexp.Regexp{regexp.MustCompile(`^4`)},
			ValidLengths: []int{13, 16, 19},
			CVVLength:    3,
			GroupFormat:  []int{4, 4, 4, 4},
			Icon:         "visa.svg",
		},
		{
			ID:   MasterCard,
			Name: "MasterCard",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^5[1-5]`),
				regexp.MustCompile(`^2[2-7]`),
			},
			ValidLengths: []int{16},
			CVVLength:    3,
			GroupFormat:  []int{4, 4, 4, 4},
			Icon:         "mastercard.svg",
		},
		{
			ID:           Amex,
			Name:         "American Express",
			Patterns:     []*regexp.Regexp{regexp.MustCompile(`^3[47]`)},
			ValidLengths: []int{15},
			CVVLength:    4,
			GroupFormat:  []int{4, 6, 5},
			Icon:         "amex.svg",
		},
		{
			ID:   Discover,
			Name: "Discover",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^6011`),
				regexp.MustCompile(`^62`),
				regexp.MustCompile(`^64[4-9]`),
				regexp.MustCompile(`^65`),
			},
			ValidLengths: []int{16, 19},
			CVVLength:    3,
			GroupFormat:  []int{4, 4, 4, 4},
			Icon:         "discover.svg",
		},
	}
}
