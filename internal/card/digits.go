package card

import "strings"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// StripNonDigits drops every byte that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Luhn reports whether digits passes the mod-10 checksum. Empty input and
// input containing anything other than digits fail.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}

	var sum int
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		if !isDigit(digits[i]) {
			return false
		}
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// MaskPAN keeps the first six and last four digits.
func MaskPAN(digits string) string {
	n := len(digits)
	if n <= 10 {
		return digits
	}
	return digits[:6] + strings.Repeat("*", n-10) + digits[n-4:]
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}

// RecalculateCursor maps a caret offset in prev onto next so that the same
// number of digits sits to its left. When next holds more digits than prev and
// the digit before the caret is followed by separators, the caret moves past
// them. Deletions leave the caret right after the digit.
func RecalculateCursor(prev, next string, prevCursor int) int {
	if prevCursor < 0 {
		prevCursor = 0
	}
	if prevCursor > len(prev) {
		prevCursor = len(prev)
	}

	k := countDigits(prev[:prevCursor])
	if k == 0 {
		return 0
	}
	grew := countDigits(next) > countDigits(prev)

	seen := 0
	for i := 0; i < len(next); i++ {
		if !isDigit(next[i]) {
			continue
		}
		seen++
		if seen < k {
			continue
		}
		pos := i + 1
		for grew && pos < len(next) && !isDigit(next[pos]) {
			pos++
		}
		return pos
	}
	return len(next)
}
