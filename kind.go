package calculator

import (
	"fmt"
	"strings"
)

// Kind identifies one of the numeric domains an [Accumulator] can be
// instantiated over.
type Kind int

const (
	Float64 Kind = iota
	Float32
	Uint8
	Int32
	Int64
	Uint
	Rational
)

// Kinds returns all selectable domains in their conventional order.
func Kinds() []Kind {
	return []Kind{Float64, Float32, Uint8, Int32, Int64, Uint, Rational}
}

var kindNames = [...]string{
	Float64:  "float64",
	Float32:  "float32",
	Uint8:    "uint8",
	Int32:    "int32",
	Int64:    "int64",
	Uint:     "uint",
	Rational: "rational",
}

var kindCNames = [...]string{
	Float64:  "double",
	Float32:  "float",
	Uint8:    "uint8_t",
	Int32:    "int",
	Int64:    "int64_t",
	Uint:     "size_t",
	Rational: "fraction",
}

// String returns the Go name of the domain, such as "int32" or "rational".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// CName returns the C name of the domain, such as "int" or "size_t".
func (k Kind) CName() string {
	if k < 0 || int(k) >= len(kindCNames) {
		return k.String()
	}
	return kindCNames[k]
}

// IsInteger returns true if the domain is a fixed-width integer type.
func (k Kind) IsInteger() bool {
	switch k {
	case Uint8, Int32, Int64, Uint:
		return true
	}
	return false
}

// IsFloat returns true if the domain is a floating-point type.
func (k Kind) IsFloat() bool {
	return k == Float64 || k == Float32
}

// IsExact returns true if results in the domain are never rounded.
// Integer domains wrap around on addition and multiplication, so only
// the rational domain is exact.
func (k Kind) IsExact() bool {
	return k == Rational
}

// ParseKind converts a domain name to a kind.
// Both the Go names ("int32", "float64") and the C-style names
// ("int", "double", "size_t") are accepted, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == name || kindCNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("parsing domain %q: %w", s, errUnknownKind)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("marshaling %v: %w", k, errUnknownKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *Kind) UnmarshalText(text []byte) error {
	var err error
	*k, err = ParseKind(string(text))
	return err
}
