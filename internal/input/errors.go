package input

import (
	"errors"
	"fmt"
)

var (
	// ErrNotANumber indicates text that does not parse as the target type.
	ErrNotANumber = errors.New("input: not a number")

	// ErrOutOfRange indicates a literal beyond the type's representable range.
	ErrOutOfRange = errors.New("input: value out of representable range")

	// ErrBelowMin indicates a value below the caller-supplied minimum.
	ErrBelowMin = errors.New("input: value below minimum")

	// ErrAboveMax indicates a value above the caller-supplied maximum.
	ErrAboveMax = errors.New("input: value above maximum")

	// ErrInputClosed indicates the input stream reached its end.
	ErrInputClosed = errors.New("input: input stream closed")
)

// Kind classifies a parse failure.
type Kind int

const (
	KindNotANumber Kind = iota + 1
	KindOutOfRange
	KindBelowMin
	KindAboveMax
)

func (k Kind) String() string {
	switch k {
	case KindNotANumber:
		return "not_a_number"
	case KindOutOfRange:
		return "out_of_range"
	case KindBelowMin:
		return "below_min"
	case KindAboveMax:
		return "above_max"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError describes rejected input. Value and Bound are only set for
// bound violations and hold the formatted parsed value and the violated
// bound.
type ParseError struct {
	Kind  Kind
	Input string
	Value string
	Bound string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindBelowMin:
		return fmt.Sprintf("input: %s is below the minimum %s", e.Value, e.Bound)
	case KindAboveMax:
		return fmt.Sprintf("input: %s is above the maximum %s", e.Value, e.Bound)
	case KindOutOfRange:
		return fmt.Sprintf("input: %q is out of range", e.Input)
	}
	return fmt.Sprintf("input: %q is not a number", e.Input)
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindOutOfRange:
		return ErrOutOfRange
	case KindBelowMin:
		return ErrBelowMin
	case KindAboveMax:
		return ErrAboveMax
	}
	return ErrNotANumber
}
