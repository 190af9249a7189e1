package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/calculator/rational"
	"golang.org/x/exp/constraints"
)

var (
	ErrIntegerUnderflow        = errors.New("integer underflow")
	ErrDivisionByZero          = rational.ErrDivisionByZero
	ErrZeroToZero              = errors.New("zero power to zero")
	ErrNegativeIntegerExponent = errors.New("integer negative power")
	ErrFractionalExponent      = errors.New("fractional power is not supported")

	errUnknownKind = errors.New("unknown domain")
)

// Domain is the set of operations the [Accumulator] needs from a numeric
// type N.
//
// Every fallible operation returns either a result or an error, and never
// both.
// Implementations must be stateless, so a single value can be shared by
// any number of accumulators.
type Domain[N any] interface {
	// Kind returns the selectable domain N corresponds to,
	// or Kind(-1) if N is not one of [Kinds].
	Kind() Kind
	// Zero returns the value an empty accumulator reads as.
	Zero() N
	IsZero(x N) bool
	Add(x, y N) (N, error)
	Sub(x, y N) (N, error)
	Mul(x, y N) (N, error)
	Div(x, y N) (N, error)
	// Pow returns x raised to the power y.
	// The case of 0^0 is left to the implementation.
	Pow(x, y N) (N, error)
	Neg(x N) (N, error)
	Parse(s string) (N, error)
	Format(x N) string
}

// kindOf returns the selectable domain of the numeric type N,
// or -1 if N is not selectable.
func kindOf[N any]() Kind {
	var z N
	switch any(z).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case uint8:
		return Uint8
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case rational.Rational:
		return Rational
	}
	return -1
}

// IntegerDomain implements [Domain] for a fixed-width integer type.
//
// Addition and multiplication wrap around like the native Go operators.
// Subtraction is computed in a strictly wider signed integer and fails
// with [ErrIntegerUnderflow] if the difference does not fit into N.
// Division by zero fails with [ErrDivisionByZero], and negative exponents
// fail with [ErrNegativeIntegerExponent].
//
// Any integer type can be used, but only uint8, int32, int64 and uint are
// selectable. For other types, such as uint16, Kind returns Kind(-1).
type IntegerDomain[N constraints.Integer] struct{}

func (IntegerDomain[N]) Kind() Kind { return kindOf[N]() }

func (IntegerDomain[N]) Zero() N { return 0 }

func (IntegerDomain[N]) IsZero(x N) bool { return x == 0 }

func (IntegerDomain[N]) Add(x, y N) (N, error) { return x + y, nil }

func (IntegerDomain[N]) Sub(x, y N) (N, error) {
	z, ok := sub(x, y)
	if !ok {
		return 0, fmt.Errorf("computing [%v - %v]: %w", x, y, ErrIntegerUnderflow)
	}
	return z, nil
}

func (IntegerDomain[N]) Mul(x, y N) (N, error) { return x * y, nil }

func (IntegerDomain[N]) Div(x, y N) (N, error) {
	if y == 0 {
		return 0, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	return x / y, nil
}

// Pow returns x raised to the power y.
// The product wraps around on overflow, and 0^0 is 1.
func (IntegerDomain[N]) Pow(x, y N) (N, error) {
	if y < 0 {
		return 0, fmt.Errorf("computing [%v^%v]: %w", x, y, ErrNegativeIntegerExponent)
	}
	return pow(x, uint64(y)), nil
}

// Neg returns -x.
// Neg returns an error if -x is not representable by N, which is the case
// for the minimum value of a signed type and for any non-zero value of
// an unsigned type.
func (d IntegerDomain[N]) Neg(x N) (N, error) {
	z, ok := sub(0, x)
	if !ok {
		return 0, fmt.Errorf("computing [-%v]: %w", x, ErrIntegerUnderflow)
	}
	return z, nil
}

// Parse converts a base-10 string to an integer of type N.
// Values outside the range of N are rejected.
func (IntegerDomain[N]) Parse(s string) (N, error) {
	var err error
	if signed[N]() {
		var i int64
		if i, err = strconv.ParseInt(s, 10, width[N]()); err == nil {
			return N(i), nil
		}
	} else {
		var u uint64
		if u, err = strconv.ParseUint(s, 10, width[N]()); err == nil {
			return N(u), nil
		}
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return 0, fmt.Errorf("parsing %q: %w", s, err)
}

func (IntegerDomain[N]) Format(x N) string {
	if signed[N]() {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}

// FloatDomain implements [Domain] for a floating-point type.
// All operations follow IEEE 754 and never fail: division by zero
// produces an infinity or NaN.
type FloatDomain[N constraints.Float] struct{}

func (FloatDomain[N]) Kind() Kind { return kindOf[N]() }

func (FloatDomain[N]) Zero() N { return 0 }

func (FloatDomain[N]) IsZero(x N) bool { return x == 0 }

func (FloatDomain[N]) Add(x, y N) (N, error) { return x + y, nil }

func (FloatDomain[N]) Sub(x, y N) (N, error) { return x - y, nil }

func (FloatDomain[N]) Mul(x, y N) (N, error) { return x * y, nil }

func (FloatDomain[N]) Div(x, y N) (N, error) { return x / y, nil }

// Pow returns x raised to the power y, as computed by [math.Pow].
func (FloatDomain[N]) Pow(x, y N) (N, error) {
	return N(math.Pow(float64(x), float64(y))), nil
}

func (FloatDomain[N]) Neg(x N) (N, error) { return -x, nil }

// Parse converts a string to a floating-point number of type N,
// as [strconv.ParseFloat] does.
func (d FloatDomain[N]) Parse(s string) (N, error) {
	f, err := strconv.ParseFloat(s, d.bits())
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return N(f), nil
}

// Format returns the shortest representation of x that parses back
// to the same value.
func (d FloatDomain[N]) Format(x N) string {
	return strconv.FormatFloat(float64(x), 'g', -1, d.bits())
}

func (FloatDomain[N]) bits() int {
	var z N
	if _, ok := any(z).(float32); ok {
		return 32
	}
	return 64
}

// RationalDomain implements [Domain] for [rational.Rational].
//
// Operations fail with [rational.ErrOverflow] if a reduced result does not
// fit into the representable range.
// Division by zero fails with [ErrDivisionByZero], and exponents that are not
// whole numbers fail with [ErrFractionalExponent].
type RationalDomain struct{}

func (RationalDomain) Kind() Kind { return Rational }

func (RationalDomain) Zero() rational.Rational { return rational.Zero() }

func (RationalDomain) IsZero(x rational.Rational) bool { return x.IsZero() }

func (RationalDomain) Add(x, y rational.Rational) (rational.Rational, error) { return x.Add(y) }

func (RationalDomain) Sub(x, y rational.Rational) (rational.Rational, error) { return x.Sub(y) }

func (RationalDomain) Mul(x, y rational.Rational) (rational.Rational, error) { return x.Mul(y) }

func (RationalDomain) Div(x, y rational.Rational) (rational.Rational, error) { return x.Quo(y) }

// Pow returns x raised to the power y.
// A negative y raises the reciprocal of x, and 0^0 is 1.
func (RationalDomain) Pow(x, y rational.Rational) (rational.Rational, error) {
	if !y.IsInt() {
		return rational.Rational{}, fmt.Errorf("computing [%v^(%v)]: %w", x, y, ErrFractionalExponent)
	}
	return x.Pow(y.Num())
}

func (RationalDomain) Neg(x rational.Rational) (rational.Rational, error) { return x.Neg(), nil }

func (RationalDomain) Parse(s string) (rational.Rational, error) { return rational.Parse(s) }

func (RationalDomain) Format(x rational.Rational) string { return x.String() }
