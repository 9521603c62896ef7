package input

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/sumcalc/internal/locale"
)

// Default bounds for floating-point prompts.
const (
	DefaultFloatMin = -2147483647
	DefaultFloatMax = 2147483647
)

// Trim removes leading and trailing space characters. Other whitespace is
// kept.
func Trim(s string) string {
	return strings.Trim(s, " ")
}

// IsEmpty reports whether s, after trimming, is empty.
func IsEmpty(s string) bool {
	return Trim(s) == ""
}

// ParseIntInRange parses s as a base-10 integer within [min, max].
func ParseIntInRange(s string, min, max int) (int, error) {
	s = Trim(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Kind: KindOutOfRange, Input: s}
		}
		return 0, &ParseError{Kind: KindNotANumber, Input: s}
	}
	if n < min {
		return 0, &ParseError{Kind: KindBelowMin, Input: s, Value: strconv.Itoa(n), Bound: strconv.Itoa(min)}
	}
	if n > max {
		return 0, &ParseError{Kind: KindAboveMax, Input: s, Value: strconv.Itoa(n), Bound: strconv.Itoa(max)}
	}
	return n, nil
}

// ParseFloatInRange parses s as a real number within [min, max]. NaN is not
// accepted as a number.
func ParseFloatInRange(s string, min, max float64) (float64, error) {
	s = Trim(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Kind: KindOutOfRange, Input: s}
		}
		return 0, &ParseError{Kind: KindNotANumber, Input: s}
	}
	if math.IsNaN(v) {
		return 0, &ParseError{Kind: KindNotANumber, Input: s}
	}
	if v == 0 && nonzeroMantissa(s) {
		return 0, &ParseError{Kind: KindOutOfRange, Input: s}
	}
	if v < min {
		return 0, &ParseError{Kind: KindBelowMin, Input: s, Value: locale.FormatFloat(v), Bound: locale.FormatFloat(min)}
	}
	if v > max {
		return 0, &ParseError{Kind: KindAboveMax, Input: s, Value: locale.FormatFloat(v), Bound: locale.FormatFloat(max)}
	}
	return v, nil
}

// nonzeroMantissa reports whether a float literal has a nonzero digit before
// its exponent. strconv rounds underflowing literals to zero without error.
func nonzeroMantissa(s string) bool {
	s = strings.ToLower(strings.TrimLeft(s, "+-"))
	digits, exp := "123456789", "e"
	if strings.HasPrefix(s, "0x") {
		s = s[2:]
		digits, exp = "123456789abcdef", "p"
	}
	if i := strings.Index(s, exp); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, digits)
}
