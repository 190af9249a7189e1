package calculator

import (
	"fmt"

	"github.com/govalues/calculator/rational"
	"golang.org/x/exp/constraints"
)

// Accumulator is a running arithmetic register over the numeric type N
// with a single memory slot.
//
// An accumulator holds an optional current value, which reads as the
// domain zero while it is unset, and an optional saved value.
// Every arithmetic operation either replaces the current value with its
// result or returns an error and leaves the accumulator unchanged.
//
// Accumulator is not safe for concurrent use.
// Independent calculators must use independent accumulators.
type Accumulator[N any] struct {
	dom Domain[N]

	cur N
	set bool // true if cur holds a value

	saved N
	has   bool // true if saved holds a value
}

// New returns an empty accumulator over the given domain.
func New[N any](dom Domain[N]) *Accumulator[N] {
	return &Accumulator[N]{dom: dom}
}

// NewInteger returns an empty accumulator over the integer type N.
func NewInteger[N constraints.Integer]() *Accumulator[N] {
	return New[N](IntegerDomain[N]{})
}

// NewFloat returns an empty accumulator over the floating-point type N.
func NewFloat[N constraints.Float]() *Accumulator[N] {
	return New[N](FloatDomain[N]{})
}

// NewRational returns an empty accumulator over exact rationals.
func NewRational() *Accumulator[rational.Rational] {
	return New[rational.Rational](RationalDomain{})
}

// Domain returns the numeric domain of the accumulator.
func (a *Accumulator[N]) Domain() Domain[N] {
	return a.dom
}

// Set replaces the current value with v.
func (a *Accumulator[N]) Set(v N) {
	a.cur, a.set = v, true
}

// Number returns the current value, or the domain zero if no value
// has been set.
func (a *Accumulator[N]) Number() N {
	if !a.set {
		return a.dom.Zero()
	}
	return a.cur
}

// Reset discards the current value.
// The memory is not affected.
func (a *Accumulator[N]) Reset() {
	var z N
	a.cur, a.set = z, false
}

// apply replaces the current value with the result of f,
// unless f fails.
func (a *Accumulator[N]) apply(f func(N) (N, error)) error {
	z, err := f(a.Number())
	if err != nil {
		return err
	}
	a.Set(z)
	return nil
}

// Add adds v to the current value.
func (a *Accumulator[N]) Add(v N) error {
	return a.apply(func(x N) (N, error) { return a.dom.Add(x, v) })
}

// Sub subtracts v from the current value.
// In integer domains, Sub returns [ErrIntegerUnderflow] if the difference
// is not representable.
func (a *Accumulator[N]) Sub(v N) error {
	return a.apply(func(x N) (N, error) { return a.dom.Sub(x, v) })
}

// Mul multiplies the current value by v.
func (a *Accumulator[N]) Mul(v N) error {
	return a.apply(func(x N) (N, error) { return a.dom.Mul(x, v) })
}

// Div divides the current value by v.
// In integer and rational domains, Div returns [ErrDivisionByZero]
// if v is 0.
func (a *Accumulator[N]) Div(v N) error {
	return a.apply(func(x N) (N, error) { return a.dom.Div(x, v) })
}

// Pow raises the current value to the power exp.
//
// Pow returns an error if:
//   - both the current value and exp are 0 ([ErrZeroToZero]), in any domain;
//   - exp is negative in an integer domain ([ErrNegativeIntegerExponent]);
//   - exp is not a whole number in the rational domain ([ErrFractionalExponent]).
func (a *Accumulator[N]) Pow(exp N) error {
	return a.apply(func(x N) (N, error) {
		if a.dom.IsZero(x) && a.dom.IsZero(exp) {
			var z N
			return z, fmt.Errorf("computing [%v^%v]: %w", a.dom.Format(x), a.dom.Format(exp), ErrZeroToZero)
		}
		return a.dom.Pow(x, exp)
	})
}

// Neg flips the sign of the current value.
// In integer domains, Neg returns [ErrIntegerUnderflow] if the negated
// value is not representable.
func (a *Accumulator[N]) Neg() error {
	return a.apply(a.dom.Neg)
}

// Save copies the current value into the memory.
// Saving an accumulator that holds no value empties the memory.
func (a *Accumulator[N]) Save() {
	a.saved, a.has = a.cur, a.set
}

// Load copies the memory into the current value.
// If the memory is empty, Load does nothing.
func (a *Accumulator[N]) Load() {
	if a.has {
		a.Set(a.saved)
	}
}

// HasSaved returns true if the memory holds a value.
func (a *Accumulator[N]) HasSaved() bool {
	return a.has
}

// Saved returns the memory and reports whether it holds a value.
func (a *Accumulator[N]) Saved() (N, bool) {
	return a.saved, a.has
}

// ClearSaved empties the memory.
func (a *Accumulator[N]) ClearSaved() {
	var z N
	a.saved, a.has = z, false
}
