package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	d, op, ctl := DigitKey, OperationKey, ControlKeyPress

	cases := []struct {
		name  string
		line  string
		extra string
		want  []Key
	}{
		{"empty", "  ", "", nil},
		{"digits", "105", "", []Key{d(1), d(0), d(5)}},
		{"ascii operators", "1+2-3*4/5^6=", "", []Key{
			d(1), op(Add), d(2), op(Sub), d(3), op(Mul), d(4), op(Div), d(5), op(Pow), d(6), ctl(Equals),
		}},
		{"symbols", "1−2×3÷4:5±⌫", "", []Key{
			d(1), op(Sub), d(2), op(Mul), d(3), op(Div), d(4), op(Div), d(5), ctl(PlusMinus), ctl(Backspace),
		}},
		{"words", "ms MR mc neg bs C", "", []Key{
			ctl(MemSave), ctl(MemLoad), ctl(MemClear), ctl(PlusMinus), ctl(Backspace), ctl(Clear),
		}},
		{"words without spaces", "5msc", "", []Key{d(5), ctl(MemSave), ctl(Clear)}},
		{"decimal point", "1.5", ".", []Key{d(1), ctl(Extra), d(5)}},
		{"fraction bar", "1/2/3", "/", []Key{d(1), ctl(Extra), d(2), ctl(Extra), d(3)}},
		{"fraction divided", "1/2:3", "/", []Key{d(1), ctl(Extra), d(2), op(Div), d(3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseKeys(c.line, c.extra)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestParseKeys_Error(t *testing.T) {
	for _, line := range []string{"x", "1.5", "m", "12 % 5"} {
		_, err := ParseKeys(line, "")
		require.Error(t, err, "line %q", line)
	}
	_, err := ParseKeys("2+a", "")
	require.EqualError(t, err, `parsing keys: unexpected 'a' at offset 2`)
}

func TestKey_String(t *testing.T) {
	require.Equal(t, "7", DigitKey(7).String())
	require.Equal(t, "×", OperationKey(Mul).String())
	require.Equal(t, "MS", ControlKeyPress(MemSave).String())
	require.Equal(t, "Operation(9)", Operation(9).String())
	require.Equal(t, "ControlKey(-1)", ControlKey(-1).String())
}
