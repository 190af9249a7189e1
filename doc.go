/*
Package calculator implements the arithmetic core of a desk calculator.
The core is a running register, [Accumulator], with a single memory slot,
generic over the numeric domain it computes in.

# Domains

A numeric domain is a Go type together with an implementation of [Domain].
The package provides three implementations:

  - [IntegerDomain]: fixed-width integer types, such as uint8, int32, int64
    and uint.
  - [FloatDomain]: float32 and float64.
  - [RationalDomain]: exact fractions, see package [rational].

The seven domains a calculator can switch between are enumerated by [Kind]:

	| Kind     | Go type           | C name   |
	| -------- | ----------------- | -------- |
	| Float64  | float64           | double   |
	| Float32  | float32           | float    |
	| Uint8    | uint8             | uint8_t  |
	| Int32    | int32             | int      |
	| Int64    | int64             | int64_t  |
	| Uint     | uint              | size_t   |
	| Rational | rational.Rational | fraction |

# Accumulator

An accumulator holds an optional current value and an optional saved value.
While no value has been set, the current value reads as the zero of the
domain.
The memory, on the other hand, distinguishes "empty" from "holds zero":
[Accumulator.Load] does nothing when the memory is empty.

Arithmetic methods combine the current value with an operand and store
the result:

	a := calculator.NewInteger[int32]()
	a.Set(5)
	err := a.Sub(10) // a.Number() == -5

If an operation fails, it returns an error and the accumulator stays
exactly as it was before the call.

# Errors

Operations report the following errors, which can be tested with [errors.Is]:

  - [ErrIntegerUnderflow]: an integer difference or negation is outside
    the range of the integer type.
  - [ErrDivisionByZero]: integer or rational division by zero.
    Floating-point division follows IEEE 754 and does not fail.
  - [ErrZeroToZero]: 0^0, rejected in every domain.
  - [ErrNegativeIntegerExponent]: a negative exponent in an integer domain.
  - [ErrFractionalExponent]: an exponent that is not a whole number
    in the rational domain.
  - [rational.ErrOverflow]: a rational result that does not fit into the
    representable range.

Integer addition and multiplication wrap around like the native Go
operators, and so does integer exponentiation.
*/
package calculator
