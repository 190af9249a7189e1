/*
Package rational implements immutable exact fractions.
It is designed to back the rational domain of a desk calculator,
where every result must be exact and displayed in lowest terms.

# Representation

[Rational] is a struct with two fields:

  - Numerator: a signed integer carrying the sign of the fraction.
  - Denominator: a strictly positive integer.

The numerical value of a rational is Numerator / Denominator.
Every constructor and every arithmetic operation reduces its result by the
greatest common divisor of the numerator and denominator, so each value has
exactly one representation.
For example, 2/4, -1/-2 and 1/2 all produce the same rational 1 / 2.

# Constraints

Both the numerator and the denominator are limited to the range
[-9,223,372,036,854,775,807, 9,223,372,036,854,775,807].
The range is symmetric, so [Rational.Neg] and [Rational.Inv] never overflow.
Arithmetic operations that would produce a reduced numerator or denominator
outside of this range return [ErrOverflow].

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using int64 arithmetic with overflow checks.
    If no overflow occurs, the result is reduced and returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with [big.Int] as a wide intermediate.
    The result is reduced and narrowed back to int64.
    If it still does not fit, an overflow error is returned.

Comparison with [Rational.Cmp] cross-multiplies the operands in the same way,
so it never overflows.

# Conversions

  - from/to string:
    [Parse], [MustParse], [Rational.String], [Rational.Scan].
  - from/to int64:
    [New], [NewFromInt64], [Rational.Num], [Rational.Den].

The string form is "N" when the denominator is 1 and "N / D" otherwise.
[Rational.Scan] reads from a stream and leaves the rune that follows a whole
number unread unless it is the '/' divider.

# Errors

Constructing a rational with a zero denominator through [New] is a programming
error and panics.
All arithmetic methods are pure and return errors in the following cases:

  - Division by Zero.
    [Rational.Quo] returns [ErrDivisionByZero] when the divisor is 0.
    [Rational.Pow] returns it when 0 is raised to a negative power.

  - Overflow.
    Results that cannot be represented return [ErrOverflow].

[Rational.Inv] panics on 0; callers are expected to guard it the way
[Rational.Quo] does.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package rational
