package rational

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
	"unicode"
)

// Rational type is a representation of an exact fraction.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational type is a struct with two parameters:
//
//   - Numerator: a signed integer carrying the sign of the fraction.
//   - Denominator: a strictly positive integer.
//
// Values are always kept in lowest terms, so two rationals are equal
// if and only if their numerators and denominators are equal.
// Both parameters are limited to the range [-MaxInt64, MaxInt64],
// which makes negation and inversion total.
type Rational struct {
	num int64 // the numerator of the rational, carries the sign
	den int64 // the denominator of the rational minus one, so that Rational{} is 0/1
}

var (
	ErrOverflow       = errors.New("rational overflow")
	ErrDivisionByZero = errors.New("division by zero")

	errZeroDenominator = errors.New("zero denominator")
	errInvalidRational = errors.New("invalid rational")
)

// newRational returns a reduced rational with the given sign and magnitudes.
func newRational(neg bool, num, den uint64) (Rational, error) {
	if den == 0 {
		return Rational{}, errZeroDenominator
	}
	if num == 0 {
		return Rational{}, nil
	}
	g := gcd(num, den)
	num, den = num/g, den/g
	switch {
	case num > math.MaxInt64:
		return Rational{}, fmt.Errorf("numerator: %w", ErrOverflow)
	case den > math.MaxInt64:
		return Rational{}, fmt.Errorf("denominator: %w", ErrOverflow)
	}
	n := int64(num)
	if neg {
		n = -n
	}
	return Rational{num: n, den: int64(den) - 1}, nil
}

func newRationalFromInt64(num, den int64) (Rational, error) {
	return newRational((num < 0) != (den < 0), abs(num), abs(den))
}

func newRationalFromBint(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, errZeroDenominator
	}
	neg := num.Sign() != den.Sign()
	n := getBint()
	d := getBint()
	g := getBint()
	defer putBint(n)
	defer putBint(d)
	defer putBint(g)
	n.Abs(num)
	d.Abs(den)
	if n.Sign() == 0 {
		return Rational{}, nil
	}
	g.GCD(nil, nil, n, d)
	n.Quo(n, g)
	d.Quo(d, g)
	switch {
	case !n.IsUint64():
		return Rational{}, fmt.Errorf("numerator: %w", ErrOverflow)
	case !d.IsUint64():
		return Rational{}, fmt.Errorf("denominator: %w", ErrOverflow)
	}
	return newRational(neg, n.Uint64(), d.Uint64())
}

// New returns a rational equal to num / den reduced to lowest terms.
// The sign of the result is carried by the numerator.
//
// New panics if den is 0 or if the reduced numerator equals [math.MinInt64].
// A zero denominator is a programming error and must be rejected
// before reaching New, for example by [Parse].
func New(num, den int64) Rational {
	r, err := newRationalFromInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewFromInt64 converts an integer to a rational with denominator 1.
//
// NewFromInt64 returns an overflow error if n equals [math.MinInt64].
func NewFromInt64(n int64) (Rational, error) {
	r, err := newRationalFromInt64(n, 1)
	if err != nil {
		return Rational{}, fmt.Errorf("converting %v: %w", n, err)
	}
	return r, nil
}

// Zero returns a rational with a value of 0.
func Zero() Rational {
	return Rational{}
}

// One returns a rational with a value of 1.
func One() Rational {
	return Rational{num: 1}
}

// Num returns the numerator of r.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator of r.
// The result is always positive.
func (r Rational) Den() int64 {
	return r.den + 1
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num == 0:
		return 0
	}
	return 1
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInt returns true if the denominator of r is 1.
func (r Rational) IsInt() bool {
	return r.den == 0
}

// Neg returns r with opposite sign.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// Abs returns absolute value of r.
func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}
	return r
}

// Inv returns the reciprocal of r, with the sign moved to the numerator.
//
// Inv panics if r is 0.
// Use [Rational.Quo] when the divisor may be zero.
func (r Rational) Inv() Rational {
	if r.IsZero() {
		panic(fmt.Sprintf("%q.Inv() failed: %v", r, ErrDivisionByZero))
	}
	f, err := newRational(r.num < 0, uint64(r.Den()), abs(r.num))
	if err != nil {
		panic(fmt.Sprintf("%q.Inv() failed: %v", r, err)) // unexpected
	}
	return f
}

// Add returns the sum of r and e.
//
// Add returns an overflow error if the reduced numerator or denominator
// of the sum does not fit into int64.
func (r Rational) Add(e Rational) (Rational, error) {
	f, err := addFast(r, e)
	if err != nil {
		f, err = addSlow(r, e)
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v + %v]: %w", r, e, err)
		}
	}
	return f, nil
}

func addFast(r, e Rational) (Rational, error) {

	var (
		rnum, enum int64
		num, den   int64
		ok         bool
	)

	// Numerators over the common denominator
	rnum, ok = mul64(r.num, e.Den())
	if !ok {
		return Rational{}, ErrOverflow
	}
	enum, ok = mul64(e.num, r.Den())
	if !ok {
		return Rational{}, ErrOverflow
	}

	// Numerator
	num, ok = add64(rnum, enum)
	if !ok {
		return Rational{}, ErrOverflow
	}

	// Denominator
	den, ok = mul64(r.Den(), e.Den())
	if !ok {
		return Rational{}, ErrOverflow
	}

	return newRationalFromInt64(num, den)
}

func addSlow(r, e Rational) (Rational, error) {

	var (
		rnum, enum *big.Int
		num, den   *big.Int
	)

	rnum = getBint()
	enum = getBint()
	num = getBint()
	den = getBint()
	defer putBint(rnum)
	defer putBint(enum)
	defer putBint(num)
	defer putBint(den)

	// Numerators over the common denominator
	rnum.SetInt64(r.num)
	rnum.Mul(rnum, den.SetInt64(e.Den()))
	enum.SetInt64(e.num)
	enum.Mul(enum, den.SetInt64(r.Den()))

	// Numerator
	num.Add(rnum, enum)

	// Denominator
	den.SetInt64(r.Den())
	den.Mul(den, rnum.SetInt64(e.Den()))

	return newRationalFromBint(num, den)
}

// Sub returns the difference of r and e.
//
// Sub returns an overflow error if the reduced numerator or denominator
// of the difference does not fit into int64.
func (r Rational) Sub(e Rational) (Rational, error) {
	f, err := r.Add(e.Neg())
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v - %v]: %w", r, e, errors.Unwrap(err))
	}
	return f, nil
}

// Mul returns the product of r and e.
//
// Mul returns an overflow error if the reduced numerator or denominator
// of the product does not fit into int64.
func (r Rational) Mul(e Rational) (Rational, error) {
	f, err := mulFast(r, e)
	if err != nil {
		f, err = mulSlow(r, e)
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
		}
	}
	return f, nil
}

func mulFast(r, e Rational) (Rational, error) {
	num, ok := mul64(r.num, e.num)
	if !ok {
		return Rational{}, ErrOverflow
	}
	den, ok := mul64(r.Den(), e.Den())
	if !ok {
		return Rational{}, ErrOverflow
	}
	return newRationalFromInt64(num, den)
}

func mulSlow(r, e Rational) (Rational, error) {
	num := getBint()
	den := getBint()
	tmp := getBint()
	defer putBint(num)
	defer putBint(den)
	defer putBint(tmp)

	num.SetInt64(r.num)
	num.Mul(num, tmp.SetInt64(e.num))
	den.SetInt64(r.Den())
	den.Mul(den, tmp.SetInt64(e.Den()))

	return newRationalFromBint(num, den)
}

// Quo returns the quotient of r and e.
//
// Quo returns an error if:
//   - e is 0;
//   - the reduced numerator or denominator of the quotient does not fit into int64.
func (r Rational) Quo(e Rational) (Rational, error) {
	if e.IsZero() {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, e, ErrDivisionByZero)
	}
	f, err := r.Mul(e.Inv())
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", r, e, errors.Unwrap(err))
	}
	return f, nil
}

// Pow returns r raised to the integer power exp.
// A negative exponent raises the reciprocal of r to -exp.
//
// Pow returns an error if:
//   - r is 0 and exp is negative;
//   - an intermediate result does not fit into int64.
func (r Rational) Pow(exp int64) (Rational, error) {
	// Special case
	if exp == 0 {
		return One(), nil
	}
	b, n := r, abs(exp)
	if exp < 0 {
		if r.IsZero() {
			return Rational{}, fmt.Errorf("computing [%v^%v]: %w", r, exp, ErrDivisionByZero)
		}
		b = r.Inv()
	}
	// General case
	f := One()
	var err error
	for {
		if n&1 == 1 {
			f, err = f.Mul(b)
			if err != nil {
				return Rational{}, fmt.Errorf("computing [%v^%v]: %w", r, exp, ErrOverflow)
			}
		}
		n >>= 1
		if n == 0 {
			break
		}
		b, err = b.Mul(b)
		if err != nil {
			return Rational{}, fmt.Errorf("computing [%v^%v]: %w", r, exp, ErrOverflow)
		}
	}
	return f, nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
//
// The comparison cross-multiplies numerators and denominators,
// so it does not rely on the operands being reduced.
func (r Rational) Cmp(e Rational) int {

	// Special case: different signs
	switch {
	case e.Sign() < r.Sign():
		return 1
	case r.Sign() < e.Sign():
		return -1
	}

	// General case
	c, ok := cmpFast(r, e)
	if !ok {
		c = cmpSlow(r, e)
	}
	return c
}

func cmpFast(r, e Rational) (int, bool) {
	rnum, ok := mul64(r.num, e.Den())
	if !ok {
		return 0, false
	}
	enum, ok := mul64(e.num, r.Den())
	if !ok {
		return 0, false
	}
	switch {
	case rnum < enum:
		return -1, true
	case rnum > enum:
		return 1, true
	}
	return 0, true
}

func cmpSlow(r, e Rational) int {
	rnum := getBint()
	enum := getBint()
	tmp := getBint()
	defer putBint(rnum)
	defer putBint(enum)
	defer putBint(tmp)

	rnum.SetInt64(r.num)
	rnum.Mul(rnum, tmp.SetInt64(e.Den()))
	enum.SetInt64(e.num)
	enum.Mul(enum, tmp.SetInt64(r.Den()))

	return rnum.Cmp(enum)
}

// Equal returns true if r and e are numerically equal.
func (r Rational) Equal(e Rational) bool {
	return r.Cmp(e) == 0
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a rational value.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	fraction       ::= [sign] digits ' / ' digits
//	rational       ::= [sign] digits | fraction
//
// The denominator is omitted when it equals 1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	if r.IsInt() {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d / %d", r.num, r.Den())
}

// Parse converts a string to a rational.
// The input string must be in one of the following formats:
//
//	12
//	-12
//	+3/4
//	3 / -4
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign     ::= '+' | '-'
//	digits   ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer  ::= [sign] digits
//	rational ::= integer [ '/' integer ]
//
// Spaces are allowed around the integers and the '/' divider.
// The result is reduced to lowest terms.
//
// Parse is strict and requires the whole string to be consumed, so
// "12abc" is an error. Use [Rational.Scan] to read a rational from a
// stream, where trailing content is left unread.
//
// Parse returns error:
//   - if the string does not represent a valid rational number;
//   - if anything but spaces follows the rational;
//   - if the denominator is 0;
//   - if the numerator or denominator does not fit into int64.
func Parse(s string) (Rational, error) {
	rd := strings.NewReader(s)
	r, err := scan(rd)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	skipSpace(rd)
	if rd.Len() > 0 {
		return Rational{}, fmt.Errorf("parsing %q: unexpected trailing characters: %w", s, errInvalidRational)
	}
	return r, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return r
}

// Scan implements [fmt.Scanner] interface.
// It reads an integer optionally followed by '/' and a second integer.
// If the rune following the first integer is not '/', it is left unread
// and the integer is returned as a whole number.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (r *Rational) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 's', 'd':
	default:
		return fmt.Errorf("Scan: unsupported verb %%%c", verb)
	}
	f, err := scan(state)
	if err != nil {
		return err
	}
	*r = f
	return nil
}

// scan reads a rational from rs, pushing back the rune that
// follows a whole number if it is not a divider.
func scan(rs io.RuneScanner) (Rational, error) {
	skipSpace(rs)
	num, err := scanInt(rs)
	if err != nil {
		return Rational{}, fmt.Errorf("numerator: %w", err)
	}

	// Divider
	skipSpace(rs)
	ch, _, err := rs.ReadRune()
	if err != nil {
		return newRationalFromInt64(num, 1)
	}
	if ch != '/' {
		if err := rs.UnreadRune(); err != nil {
			return Rational{}, err
		}
		return newRationalFromInt64(num, 1)
	}

	// Denominator
	skipSpace(rs)
	den, err := scanInt(rs)
	if err != nil {
		return Rational{}, fmt.Errorf("denominator: %w", err)
	}
	if den == 0 {
		return Rational{}, errZeroDenominator
	}
	return newRationalFromInt64(num, den)
}

// scanInt reads an optionally signed decimal integer from rs.
func scanInt(rs io.RuneScanner) (int64, error) {
	var (
		neg    bool
		n      uint64
		digits int
	)
	ch, _, err := rs.ReadRune()
	if err != nil {
		return 0, errInvalidRational
	}
	switch ch {
	case '-':
		neg = true
	case '+':
	default:
		if err := rs.UnreadRune(); err != nil {
			return 0, err
		}
	}
	for {
		ch, _, err = rs.ReadRune()
		if err != nil {
			break
		}
		if ch < '0' || ch > '9' {
			if err := rs.UnreadRune(); err != nil {
				return 0, err
			}
			break
		}
		if n > (math.MaxInt64-uint64(ch-'0'))/10 {
			return 0, ErrOverflow
		}
		n = n*10 + uint64(ch-'0')
		digits++
	}
	if digits == 0 {
		return 0, errInvalidRational
	}
	if neg {
		return -int64(n), nil
	}
	return int64(n), nil
}

func skipSpace(rs io.RuneScanner) {
	for {
		ch, _, err := rs.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(ch) {
			_ = rs.UnreadRune()
			return
		}
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	var err error
	*r, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
