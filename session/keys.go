package session

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operation is a binary operation key.
type Operation int

const (
	Mul Operation = iota
	Div
	Sub
	Add
	Pow
)

var operationSymbols = [...]string{
	Mul: "×",
	Div: "÷",
	Sub: "−",
	Add: "+",
	Pow: "^",
}

// String returns the symbol shown in the formula, such as "×".
func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationSymbols) {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return operationSymbols[op]
}

// ControlKey is a key that is neither a digit nor an operation.
type ControlKey int

const (
	Equals ControlKey = iota
	Clear
	MemSave
	MemLoad
	MemClear
	PlusMinus
	Backspace
	// Extra is the domain specific key, such as the decimal point.
	Extra
)

var controlLabels = [...]string{
	Equals:    "=",
	Clear:     "C",
	MemSave:   "MS",
	MemLoad:   "MR",
	MemClear:  "MC",
	PlusMinus: "±",
	Backspace: "⌫",
	Extra:     "extra",
}

func (k ControlKey) String() string {
	if k < 0 || int(k) >= len(controlLabels) {
		return fmt.Sprintf("ControlKey(%d)", int(k))
	}
	return controlLabels[k]
}

// KeyType tells which field of a [Key] is meaningful.
type KeyType int

const (
	KeyDigit KeyType = iota
	KeyOperation
	KeyControl
)

// Key is a single key press.
type Key struct {
	Type      KeyType
	Digit     int
	Operation Operation
	Control   ControlKey
}

func DigitKey(d int) Key { return Key{Type: KeyDigit, Digit: d} }

func OperationKey(op Operation) Key { return Key{Type: KeyOperation, Operation: op} }

func ControlKeyPress(k ControlKey) Key { return Key{Type: KeyControl, Control: k} }

func (k Key) String() string {
	switch k.Type {
	case KeyDigit:
		return fmt.Sprint(k.Digit)
	case KeyOperation:
		return k.Operation.String()
	case KeyControl:
		return k.Control.String()
	}
	return fmt.Sprintf("Key(%d)", int(k.Type))
}

// keyWords are the multi-rune key names, longest first.
var keyWords = []struct {
	word string
	key  Key
}{
	{"neg", ControlKeyPress(PlusMinus)},
	{"ms", ControlKeyPress(MemSave)},
	{"mr", ControlKeyPress(MemLoad)},
	{"mc", ControlKeyPress(MemClear)},
	{"bs", ControlKeyPress(Backspace)},
	{"c", ControlKeyPress(Clear)},
}

var keyRunes = map[rune]Key{
	'+': OperationKey(Add),
	'-': OperationKey(Sub),
	'−': OperationKey(Sub),
	'*': OperationKey(Mul),
	'×': OperationKey(Mul),
	'÷': OperationKey(Div),
	':': OperationKey(Div),
	'/': OperationKey(Div),
	'^': OperationKey(Pow),
	'=': ControlKeyPress(Equals),
	'±': ControlKeyPress(PlusMinus),
	'⌫': ControlKeyPress(Backspace),
}

// ParseKeys converts a line of typed characters to key presses.
//
// Digits are digit keys, and the extra key is matched by its label.
// The label takes precedence over the operators, so with "/" as the extra
// key a slash builds a fraction rather than dividing.
// Whitespace separates keys and is otherwise ignored.
//
// The key names are:
//
//	+            addition
//	- −          subtraction
//	* ×          multiplication
//	/ ÷ :        division
//	^            power
//	=            equals
//	c            clear
//	ms mr mc     memory save, load and clear
//	neg ±        sign flip
//	bs ⌫         backspace
func ParseKeys(line, extra string) ([]Key, error) {
	var keys []Key
	for pos := 0; pos < len(line); {
		rest := line[pos:]
		r, size := utf8.DecodeRuneInString(rest)

		switch {
		case unicode.IsSpace(r):
			pos += size
			continue

		case r >= '0' && r <= '9':
			keys = append(keys, DigitKey(int(r-'0')))
			pos += size
			continue

		case extra != "" && strings.HasPrefix(rest, extra):
			keys = append(keys, ControlKeyPress(Extra))
			pos += len(extra)
			continue
		}

		if k, n, ok := matchWord(rest); ok {
			keys = append(keys, k)
			pos += n
			continue
		}
		if k, ok := keyRunes[r]; ok {
			keys = append(keys, k)
			pos += size
			continue
		}
		return nil, fmt.Errorf("parsing keys: unexpected %q at offset %d", r, pos)
	}
	return keys, nil
}

func matchWord(s string) (Key, int, bool) {
	for _, w := range keyWords {
		if len(s) >= len(w.word) && strings.EqualFold(s[:len(w.word)], w.word) {
			return w.key, len(w.word), true
		}
	}
	return Key{}, 0, false
}
