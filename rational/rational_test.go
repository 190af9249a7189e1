package rational

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"
	"unsafe"
)

func TestRational_ZeroValue(t *testing.T) {
	got := Rational{}
	want := New(0, 1)
	if got != want {
		t.Errorf("Rational{} = %q, want %q", got, want)
	}
	if got.Den() != 1 {
		t.Errorf("Rational{}.Den() = %v, want 1", got.Den())
	}
}

func TestRational_Size(t *testing.T) {
	r := Rational{}
	got := unsafe.Sizeof(r)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", r, got, want)
	}
}

func TestRational_Interfaces(t *testing.T) {
	var r any

	r = Rational{}
	_, ok := r.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", r)
	}
	_, ok = r.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", r)
	}

	r = &Rational{}
	_, ok = r.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", r)
	}
	_, ok = r.(fmt.Scanner)
	if !ok {
		t.Errorf("%T does not implement fmt.Scanner", r)
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den         int64
			wantNum, wantDen int64
		}{
			{0, 1, 0, 1},
			{0, -5, 0, 1},
			{1, 2, 1, 2},
			{2, 4, 1, 2},
			{-2, 4, -1, 2},
			{2, -4, -1, 2},
			{-2, -4, 1, 2},
			{6, 3, 2, 1},
			{12, 18, 2, 3},
			{math.MaxInt64, 1, math.MaxInt64, 1},
			{-math.MaxInt64, 1, -math.MaxInt64, 1},
			{1, math.MaxInt64, 1, math.MaxInt64},
			{1, -math.MaxInt64, -1, math.MaxInt64},
			{math.MinInt64, 2, math.MinInt64 / 2, 1},
			{math.MinInt64, math.MinInt64, 1, 1},
		}
		for _, tt := range tests {
			got := New(tt.num, tt.den)
			if got.Num() != tt.wantNum || got.Den() != tt.wantDen {
				t.Errorf("New(%v, %v) = %v/%v, want %v/%v", tt.num, tt.den, got.Num(), got.Den(), tt.wantNum, tt.wantDen)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		tests := map[string]struct {
			num, den int64
		}{
			"zero denominator 1": {0, 0},
			"zero denominator 2": {1, 0},
			"zero denominator 3": {math.MinInt64, 0},
			"overflow 1":         {math.MinInt64, 1},
			"overflow 2":         {1, math.MinInt64},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("New(%v, %v) did not panic", tt.num, tt.den)
					}
				}()
				_ = New(tt.num, tt.den)
			})
		}
	})
}

func TestNewFromInt64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int64{math.MaxInt64, -math.MaxInt64, -1, 0, 1, 42}
		for _, n := range tests {
			got, err := NewFromInt64(n)
			if err != nil {
				t.Errorf("NewFromInt64(%v) failed: %v", n, err)
				continue
			}
			if got.Num() != n || got.Den() != 1 {
				t.Errorf("NewFromInt64(%v) = %q, want %v", n, got, n)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewFromInt64(math.MinInt64)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("NewFromInt64(%v) = %v, want %v", int64(math.MinInt64), err, ErrOverflow)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Rational
		}{
			{"0", New(0, 1)},
			{"-0", New(0, 1)},
			{"+7", New(7, 1)},
			{"12", New(12, 1)},
			{"-12", New(-12, 1)},
			{"1/2", New(1, 2)},
			{"1 / 2", New(1, 2)},
			{"  3 /4  ", New(3, 4)},
			{"2/4", New(1, 2)},
			{"3/-4", New(-3, 4)},
			{"-3/-4", New(3, 4)},
			{"0/5", New(0, 1)},
			{"10/5", New(2, 1)},
			{"9223372036854775807", New(math.MaxInt64, 1)},
			{"-9223372036854775807/9223372036854775807", New(-1, 1)},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":                "",
			"spaces":               "   ",
			"sign only":            "-",
			"letters":              "abc",
			"missing denominator":  "1/",
			"invalid denominator":  "1/x",
			"zero denominator 1":   "1/0",
			"zero denominator 2":   "0 / -0",
			"double divider":       "1//2",
			"trailing characters":  "12 x",
			"trailing letters":     "12abc",
			"trailing fraction":    "1/2/3",
			"decimal point":        "1.5",
			"numerator overflow":   "9223372036854775808",
			"min int64":            "-9223372036854775808",
			"denominator overflow": "1/9223372036854775808",
		}
		for name, s := range tests {
			_, err := Parse(s)
			if err == nil {
				t.Errorf("Parse(%q) did not fail [%v]", s, name)
			}
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\"1/0\") did not panic")
			}
		}()
		MustParse("1/0")
	})
}

func TestRational_Scan(t *testing.T) {
	t.Run("whole number leaves divider unread", func(t *testing.T) {
		var r Rational
		var rest string
		n, err := fmt.Sscan("12 x", &r, &rest)
		if err != nil {
			t.Fatalf("fmt.Sscan failed after %v item(s): %v", n, err)
		}
		if r != New(12, 1) {
			t.Errorf("fmt.Sscan(\"12 x\") = %q, want 12", r)
		}
		if rest != "x" {
			t.Errorf("fmt.Sscan(\"12 x\") left %q, want \"x\"", rest)
		}
	})

	t.Run("whole number leaves letters unread", func(t *testing.T) {
		var r Rational
		var rest string
		_, err := fmt.Sscan("12abc", &r, &rest)
		if err != nil {
			t.Fatalf("fmt.Sscan failed: %v", err)
		}
		if r != New(12, 1) || rest != "abc" {
			t.Errorf("fmt.Sscan(\"12abc\") = %q, %q, want 12, \"abc\"", r, rest)
		}
	})

	t.Run("fraction", func(t *testing.T) {
		var r, s Rational
		_, err := fmt.Sscan("6 / 8 -1/3", &r, &s)
		if err != nil {
			t.Fatalf("fmt.Sscan failed: %v", err)
		}
		if r != New(3, 4) {
			t.Errorf("first = %q, want 3 / 4", r)
		}
		if s != New(-1, 3) {
			t.Errorf("second = %q, want -1 / 3", s)
		}
	})

	t.Run("end of input", func(t *testing.T) {
		var r Rational
		_, err := fmt.Sscan("5", &r)
		if err != nil {
			t.Fatalf("fmt.Sscan failed: %v", err)
		}
		if r != New(5, 1) {
			t.Errorf("fmt.Sscan(\"5\") = %q, want 5", r)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"1/0", "1/", "x", "1 / y"}
		for _, s := range tests {
			var r Rational
			_, err := fmt.Sscan(s, &r)
			if err == nil {
				t.Errorf("fmt.Sscan(%q) did not fail", s)
			}
		}
	})
}

func TestRational_String(t *testing.T) {
	tests := []struct {
		r    Rational
		want string
	}{
		{Rational{}, "0"},
		{New(5, 1), "5"},
		{New(-5, 1), "-5"},
		{New(1, 2), "1 / 2"},
		{New(-5, 6), "-5 / 6"},
		{New(math.MaxInt64, math.MaxInt64-1), "9223372036854775807 / 9223372036854775806"},
	}
	for _, tt := range tests {
		got := tt.r.String()
		if got != tt.want {
			t.Errorf("%v/%v.String() = %q, want %q", tt.r.Num(), tt.r.Den(), got, tt.want)
		}
	}
}

func TestRational_MarshalText(t *testing.T) {
	r := New(-7, 3)
	text, err := r.MarshalText()
	if err != nil {
		t.Fatalf("%q.MarshalText() failed: %v", r, err)
	}
	var got Rational
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if got != r {
		t.Errorf("UnmarshalText(%q) = %q, want %q", text, got, r)
	}
}

func TestRational_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, e, want string
		}{
			{"0", "0", "0"},
			{"1/2", "1/3", "5/6"},
			{"1/2", "-1/2", "0"},
			{"1/6", "1/3", "1/2"},
			{"-3/4", "1/4", "-1/2"},
			{"9223372036854775807", "-1", "9223372036854775806"},
			{"1/9223372036854775807", "1/9223372036854775807", "2/9223372036854775807"},
			// cross products overflow int64, reduced result fits
			{"4611686018427387904/3", "4611686018427387904/-3", "0"},
			{"9223372036854775807/2", "9223372036854775807/2", "9223372036854775807"},
		}
		for _, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			got, err := r.Add(e)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", r, e, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Add(%q) = %q, want %q", r, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			r, e string
		}{
			"numerator overflow 1": {"9223372036854775807", "1"},
			"numerator overflow 2": {"-9223372036854775807", "-9223372036854775807"},
			"denominator overflow": {"1/3037000500", "1/3037000501"},
		}
		for name, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			_, err := r.Add(e)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%q.Add(%q) = %v, want %v [%v]", r, e, err, ErrOverflow, name)
			}
		}
	})
}

func TestRational_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, e, want string
		}{
			{"0", "0", "0"},
			{"5", "10", "-5"},
			{"1/2", "1/3", "1/6"},
			{"1/3", "1/2", "-1/6"},
			{"-9223372036854775807", "-9223372036854775807", "0"},
		}
		for _, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			got, err := r.Sub(e)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", r, e, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Sub(%q) = %q, want %q", r, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParse("-9223372036854775807")
		e := MustParse("1")
		_, err := r.Sub(e)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("%q.Sub(%q) = %v, want %v", r, e, err, ErrOverflow)
		}
	})
}

func TestRational_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, e, want string
		}{
			{"0", "5/7", "0"},
			{"2/3", "3/2", "1"},
			{"-2/3", "3/4", "-1/2"},
			{"-2/3", "-3/4", "1/2"},
			{"4294967296/3", "3/4294967296", "1"},
			{"9223372036854775807/2", "2/9223372036854775807", "1"},
		}
		for _, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			got, err := r.Mul(e)
			if err != nil {
				t.Errorf("%q.Mul(%q) failed: %v", r, e, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Mul(%q) = %q, want %q", r, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			r, e string
		}{
			"numerator overflow":   {"4294967296", "4294967296"},
			"denominator overflow": {"1/4294967296", "1/4294967296"},
		}
		for name, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			_, err := r.Mul(e)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%q.Mul(%q) = %v, want %v [%v]", r, e, err, ErrOverflow, name)
			}
		}
	})
}

func TestRational_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, e, want string
		}{
			{"0", "5", "0"},
			{"1/2", "1/4", "2"},
			{"1", "-3", "-1/3"},
			{"-2/3", "-4/9", "3/2"},
		}
		for _, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			got, err := r.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", r, e, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Quo(%q) = %q, want %q", r, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			r, e string
			want error
		}{
			"zero by zero":    {"0", "0", ErrDivisionByZero},
			"one by zero":     {"1", "0", ErrDivisionByZero},
			"overflow":        {"9223372036854775807", "1/2", ErrOverflow},
			"small by larger": {"1/4294967296", "4294967296", ErrOverflow},
		}
		for name, tt := range tests {
			r := MustParse(tt.r)
			e := MustParse(tt.e)
			_, err := r.Quo(e)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.Quo(%q) = %v, want %v [%v]", r, e, err, tt.want, name)
			}
		}
	})
}

func TestRational_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r    string
			exp  int64
			want string
		}{
			{"0", 0, "1"},
			{"0", 5, "0"},
			{"2", 3, "8"},
			{"2/3", 2, "4/9"},
			{"-2/3", 3, "-8/27"},
			{"2/3", -2, "9/4"},
			{"-2", -3, "-1/8"},
			{"1", math.MaxInt64, "1"},
			{"-1", math.MaxInt64, "-1"},
			{"-1", math.MinInt64, "1"},
			{"2", 62, "4611686018427387904"},
		}
		for _, tt := range tests {
			r := MustParse(tt.r)
			got, err := r.Pow(tt.exp)
			if err != nil {
				t.Errorf("%q.Pow(%v) failed: %v", r, tt.exp, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Pow(%v) = %q, want %q", r, tt.exp, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			r    string
			exp  int64
			want error
		}{
			"zero negative power": {"0", -1, ErrDivisionByZero},
			"overflow 1":          {"2", 63, ErrOverflow},
			"overflow 2":          {"1/2", -63, ErrOverflow},
			"overflow 3":          {"3/2", 100, ErrOverflow},
		}
		for name, tt := range tests {
			r := MustParse(tt.r)
			_, err := r.Pow(tt.exp)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.Pow(%v) = %v, want %v [%v]", r, tt.exp, err, tt.want, name)
			}
		}
	})
}

func TestRational_Neg(t *testing.T) {
	tests := []struct {
		r, want string
	}{
		{"0", "0"},
		{"1/2", "-1/2"},
		{"-9223372036854775807", "9223372036854775807"},
	}
	for _, tt := range tests {
		r := MustParse(tt.r)
		got := r.Neg()
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Neg() = %q, want %q", r, got, want)
		}
	}
}

func TestRational_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, want string
		}{
			{"1", "1"},
			{"2", "1/2"},
			{"-2/3", "-3/2"},
			{"3/-7", "-7/3"},
			{"1/9223372036854775807", "9223372036854775807"},
		}
		for _, tt := range tests {
			r := MustParse(tt.r)
			got := r.Inv()
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.Inv() = %q, want %q", r, got, want)
			}
			one, err := r.Mul(got)
			if err != nil {
				t.Errorf("%q.Mul(%q) failed: %v", r, got, err)
				continue
			}
			if one != MustParse("1") {
				t.Errorf("%q.Mul(%q) = %q, want 1", r, got, one)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Rational{}.Inv() did not panic")
			}
		}()
		_ = Rational{}.Inv()
	})
}

func TestRational_Cmp(t *testing.T) {
	tests := []struct {
		r, e string
		want int
	}{
		{"0", "0", 0},
		{"1/2", "2/4", 0},
		{"1/3", "1/2", -1},
		{"1/2", "1/3", 1},
		{"-1/2", "1/3", -1},
		{"-1/2", "-1/3", -1},
		{"0", "-1/3", 1},
		{"9223372036854775807/9223372036854775806", "9223372036854775806/9223372036854775805", -1},
		{"-9223372036854775807/9223372036854775806", "-9223372036854775806/9223372036854775805", 1},
	}
	for _, tt := range tests {
		r := MustParse(tt.r)
		e := MustParse(tt.e)
		got := r.Cmp(e)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", r, e, got, tt.want)
		}
	}
}

func TestRational_Equal(t *testing.T) {
	// unreduced operands still compare by value
	r := Rational{num: 2, den: 3}
	e := New(1, 2)
	if !r.Equal(e) {
		t.Errorf("2/4.Equal(%q) = false, want true", e)
	}
	if r == e {
		t.Errorf("2/4 == %q, want field-wise inequality", e)
	}
}

func TestRational_Accessors(t *testing.T) {
	tests := []struct {
		r      string
		sign   int
		isZero bool
		isInt  bool
		abs    string
	}{
		{"0", 0, true, true, "0"},
		{"3", 1, false, true, "3"},
		{"-3/4", -1, false, false, "3/4"},
	}
	for _, tt := range tests {
		r := MustParse(tt.r)
		if got := r.Sign(); got != tt.sign {
			t.Errorf("%q.Sign() = %v, want %v", r, got, tt.sign)
		}
		if got := r.IsZero(); got != tt.isZero {
			t.Errorf("%q.IsZero() = %v, want %v", r, got, tt.isZero)
		}
		if got := r.IsInt(); got != tt.isInt {
			t.Errorf("%q.IsInt() = %v, want %v", r, got, tt.isInt)
		}
		if got, want := r.Abs(), MustParse(tt.abs); got != want {
			t.Errorf("%q.Abs() = %q, want %q", r, got, want)
		}
	}
}

func TestMusts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := New(1, 2)
		e := New(1, 3)
		if got, want := r.MustAdd(e), New(5, 6); got != want {
			t.Errorf("MustAdd = %q, want %q", got, want)
		}
		if got, want := r.MustSub(e), New(1, 6); got != want {
			t.Errorf("MustSub = %q, want %q", got, want)
		}
		if got, want := r.MustMul(e), New(1, 6); got != want {
			t.Errorf("MustMul = %q, want %q", got, want)
		}
		if got, want := r.MustQuo(e), New(3, 2); got != want {
			t.Errorf("MustQuo = %q, want %q", got, want)
		}
	})

	t.Run("panic", func(t *testing.T) {
		tests := map[string]func(){
			"MustAdd": func() { New(math.MaxInt64, 1).MustAdd(One()) },
			"MustSub": func() { New(-math.MaxInt64, 1).MustSub(One()) },
			"MustMul": func() { New(math.MaxInt64, 1).MustMul(New(2, 1)) },
			"MustQuo": func() { One().MustQuo(Zero()) },
		}
		for name, f := range tests {
			t.Run(name, func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("%v did not panic", name)
					}
				}()
				f()
			})
		}
	})
}

func TestRational_GroupLaws(t *testing.T) {
	values := []Rational{
		New(0, 1), New(1, 1), New(-1, 1), New(1, 2), New(-2, 3),
		New(5, 7), New(-11, 13), New(100, 3), New(-1, 1000),
	}
	for _, a := range values {
		if got := a.MustAdd(a.Neg()); !got.IsZero() {
			t.Errorf("%q + (-%q) = %q, want 0", a, a, got)
		}
		if !a.IsZero() {
			if got := a.MustMul(a.Inv()); got != One() {
				t.Errorf("%q * %q.Inv() = %q, want 1", a, a, got)
			}
		}
		for _, b := range values {
			if a.MustAdd(b) != b.MustAdd(a) {
				t.Errorf("%q + %q is not commutative", a, b)
			}
			if a.MustMul(b) != b.MustMul(a) {
				t.Errorf("%q * %q is not commutative", a, b)
			}
			for _, c := range values {
				if a.MustAdd(b).MustAdd(c) != a.MustAdd(b.MustAdd(c)) {
					t.Errorf("(%q + %q) + %q is not associative", a, b, c)
				}
				if a.MustMul(b).MustMul(c) != a.MustMul(b.MustMul(c)) {
					t.Errorf("(%q * %q) * %q is not associative", a, b, c)
				}
			}
		}
	}
}

func checkReduced(t *testing.T, r Rational) {
	t.Helper()
	if r.Den() <= 0 {
		t.Errorf("%q has non-positive denominator %v", r, r.Den())
	}
	if g := gcd(abs(r.Num()), uint64(r.Den())); r.Num() != 0 && g != 1 {
		t.Errorf("%q is not reduced, gcd = %v", r, g)
	}
	if r.Num() == 0 && r.Den() != 1 {
		t.Errorf("zero %v/%v is not canonical", r.Num(), r.Den())
	}
}

func bigRat(r Rational) *big.Rat {
	return big.NewRat(r.Num(), r.Den())
}

func FuzzParse(f *testing.F) {
	f.Add(int64(1), int64(2))
	f.Add(int64(-6), int64(8))
	f.Add(int64(0), int64(-3))
	f.Add(int64(math.MaxInt64), int64(math.MaxInt64-1))

	f.Fuzz(
		func(t *testing.T, num, den int64) {
			r, err := newRationalFromInt64(num, den)
			if err != nil {
				t.Skip()
				return
			}
			checkReduced(t, r)
			got, err := Parse(r.String())
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", r.String(), err)
				return
			}
			if got != r {
				t.Errorf("Parse(%q) = %q, want %q", r.String(), got, r)
			}
		},
	)
}

func FuzzRational_Add(f *testing.F) {
	f.Add(int64(1), int64(2), int64(1), int64(3))
	f.Add(int64(math.MaxInt64), int64(3), int64(-math.MaxInt64), int64(7))

	f.Fuzz(
		func(t *testing.T, rnum, rden, enum, eden int64) {
			r, err := newRationalFromInt64(rnum, rden)
			if err != nil {
				t.Skip()
				return
			}
			e, err := newRationalFromInt64(enum, eden)
			if err != nil {
				t.Skip()
				return
			}
			got, err := r.Add(e)
			if err != nil {
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%q.Add(%q) failed: %v", r, e, err)
				}
				return
			}
			checkReduced(t, got)
			// verify against wide arithmetic
			if back, err := got.Sub(e); err == nil && back != r {
				t.Errorf("(%q + %q) - %q = %q, want %q", r, e, e, back, r)
			}
		},
	)
}

func FuzzRational_Mul(f *testing.F) {
	f.Add(int64(2), int64(3), int64(3), int64(2))
	f.Add(int64(4294967296), int64(3), int64(3), int64(4294967296))

	f.Fuzz(
		func(t *testing.T, rnum, rden, enum, eden int64) {
			r, err := newRationalFromInt64(rnum, rden)
			if err != nil {
				t.Skip()
				return
			}
			e, err := newRationalFromInt64(enum, eden)
			if err != nil {
				t.Skip()
				return
			}
			got, err := r.Mul(e)
			if err != nil {
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("%q.Mul(%q) failed: %v", r, e, err)
				}
				return
			}
			checkReduced(t, got)
			if e.IsZero() {
				return
			}
			if back, err := got.Quo(e); err == nil && back != r {
				t.Errorf("(%q * %q) / %q = %q, want %q", r, e, e, back, r)
			}
		},
	)
}

func FuzzRational_Cmp(f *testing.F) {
	f.Add(int64(1), int64(2), int64(1), int64(3))
	f.Add(int64(math.MaxInt64), int64(math.MaxInt64-1), int64(math.MaxInt64-1), int64(math.MaxInt64-2))

	f.Fuzz(
		func(t *testing.T, rnum, rden, enum, eden int64) {
			r, err := newRationalFromInt64(rnum, rden)
			if err != nil {
				t.Skip()
				return
			}
			e, err := newRationalFromInt64(enum, eden)
			if err != nil {
				t.Skip()
				return
			}
			got := r.Cmp(e)
			want := bigRat(r).Cmp(bigRat(e))
			if got != want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", r, e, got, want)
			}
			if e.Cmp(r) != -got {
				t.Errorf("%q.Cmp(%q) is not antisymmetric", r, e)
			}
		},
	)
}
