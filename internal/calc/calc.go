// Package calc holds the three shared real numbers and the arithmetic the
// menu actions perform on them.
package calc

import "fmt"

// MaxMagnitude is the largest absolute value a variable may hold so that the
// sum of all three still rounds into an int64.
const MaxMagnitude = 1e18

// Var names one of the shared numbers.
type Var int

const (
	X Var = iota
	Y
	Z
)

// All lists the variables in menu order.
var All = []Var{X, Y, Z}

func (v Var) String() string {
	switch v {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Var(%d)", int(v))
}

// Vars is the shared numeric state. The zero value holds x = y = z = 0.
type Vars struct {
	X, Y, Z float64
}

// Set stores val into v.
func (s *Vars) Set(v Var, val float64) {
	*s.ref(v) = val
}

func (s *Vars) ref(v Var) *float64 {
	switch v {
	case X:
		return &s.X
	case Y:
		return &s.Y
	case Z:
		return &s.Z
	}
	panic(fmt.Sprintf("calc: unknown variable %v", v))
}

// Sum returns x + y + z.
func (s *Vars) Sum() float64 {
	return s.X + s.Y + s.Z
}

// RoundHalfAwayFromZero rounds v to the nearest integer, ties away from
// zero, by shifting half a unit toward the sign and truncating. v must lie
// within ±3*MaxMagnitude.
func RoundHalfAwayFromZero(v float64) int64 {
	return int64(v + 0.5*sign(v))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
