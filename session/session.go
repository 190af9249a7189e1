// Package session drives a calculator accumulator from key presses.
//
// A [Session] owns one accumulator of the selected domain together with
// the state a calculator window keeps next to it: the number being typed,
// the pending operation and the formula.
// Every key press updates that state and pushes the resulting texts
// to a [Display].
package session

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/govalues/calculator"
	"github.com/govalues/calculator/rational"
	"github.com/rs/zerolog"
)

// Session is a single calculator.
// It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	logger  zerolog.Logger
	display Display

	eng   engine
	extra string // label of the extra key, if any

	input   string    // number being typed
	op      Operation // pending operation
	pending bool      // true if op is set
}

type Option func(*Session)

// WithLogger sets the logger of the session.
// By default the session does not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New returns a session computing in the given domain.
func New(kind calculator.Kind, display Display, opts ...Option) (*Session, error) {
	s := &Session{
		id:      uuid.New(),
		logger:  zerolog.Nop(),
		display: display,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.id.String()).Logger()

	err := s.SelectDomain(kind)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Kind() calculator.Kind { return s.eng.kind() }

// Value returns the current value of the accumulator.
func (s *Session) Value() string { return s.eng.number() }

// ExtraKey returns the label of the extra key of the domain,
// or "" if the domain has none.
func (s *Session) ExtraKey() string { return s.extra }

// extraKey returns the label of the extra key of a domain:
// the decimal point for floats and the fraction bar for rationals.
func extraKey(kind calculator.Kind) string {
	switch {
	case kind.IsFloat():
		return "."
	case kind == calculator.Rational:
		return "/"
	}
	return ""
}

// SelectDomain switches to another domain.
// The accumulator, memory and pending operation start afresh.
func (s *Session) SelectDomain(kind calculator.Kind) error {
	eng, err := newEngine(kind)
	if err != nil {
		return err
	}
	s.eng = eng
	s.extra = extraKey(kind)
	s.input, s.pending = "", false

	s.logger.Debug().Stringer("domain", kind).Msg("Domain selected")

	s.display.SetExtraKey(s.extra, s.extra != "")
	s.display.SetMemText("")
	s.display.SetFormulaText("")
	s.showInput()
	return nil
}

// Type presses every key of a key line, see [ParseKeys].
// Nothing is pressed if the line does not parse.
func (s *Session) Type(line string) error {
	keys, err := ParseKeys(line, s.extra)
	if err != nil {
		return err
	}
	for _, k := range keys {
		s.Press(k)
	}
	return nil
}

func (s *Session) Press(k Key) {
	switch k.Type {
	case KeyDigit:
		s.PressDigit(k.Digit)
	case KeyOperation:
		s.PressOperation(k.Operation)
	case KeyControl:
		s.PressControl(k.Control)
	}
}

// PressDigit appends a digit from 0 to 9 to the number being typed.
func (s *Session) PressDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	digit := string(rune('0' + d))
	switch s.input {
	case "0":
		s.input = digit
	case "-0":
		s.input = "-" + digit
	default:
		s.input += digit
	}
	s.showInput()
}

// PressOperation commits the number being typed and makes op
// the pending operation.
func (s *Session) PressOperation(op Operation) {
	s.logger.Debug().Stringer("operation", op).Msg("Key pressed")

	if s.input != "" {
		var err error
		if s.pending {
			err = s.eng.apply(s.op, s.input)
		} else {
			err = s.eng.set(s.input)
		}
		if err != nil {
			s.fail(err)
			return
		}
	}
	s.input = ""
	s.op, s.pending = op, true
	s.display.SetFormulaText(s.eng.number() + " " + op.String())
	s.showInput()
}

func (s *Session) PressControl(key ControlKey) {
	s.logger.Debug().Stringer("key", key).Msg("Key pressed")

	switch key {
	case Equals:
		s.equals()
	case Clear:
		s.eng.reset()
		s.input, s.pending = "", false
		s.display.SetFormulaText("")
		s.showInput()
	case MemSave:
		if !s.pending && s.input != "" {
			err := s.eng.set(s.input)
			if err != nil {
				s.fail(err)
				return
			}
			s.input = ""
		}
		s.eng.save()
		s.showMem()
	case MemLoad:
		v, ok := s.eng.saved()
		if !ok {
			return
		}
		if s.pending {
			s.input = strings.ReplaceAll(v, " ", "")
		} else {
			s.eng.load()
			s.input = ""
		}
		s.showInput()
	case MemClear:
		s.eng.clearSaved()
		s.showMem()
	case PlusMinus:
		s.plusMinus()
	case Backspace:
		if s.input != "" {
			_, size := utf8.DecodeLastRuneInString(s.input)
			s.input = s.input[:len(s.input)-size]
		}
		s.showInput()
	case Extra:
		if s.extra == "" || strings.Contains(s.input, s.extra) {
			return
		}
		if s.input == "" || s.input == "-" {
			s.input += "0"
		}
		s.input += s.extra
		s.showInput()
	}
}

func (s *Session) equals() {
	if !s.pending {
		if s.input != "" {
			err := s.eng.set(s.input)
			if err != nil {
				s.fail(err)
				return
			}
			s.input = ""
		}
		s.display.SetFormulaText(s.eng.number() + " =")
		s.showInput()
		return
	}

	rhs := s.input
	if rhs == "" {
		rhs = s.eng.number()
	}
	rhs, err := s.eng.format(rhs)
	if err != nil {
		s.fail(err)
		return
	}
	lhs := s.eng.number()
	err = s.eng.apply(s.op, rhs)
	if err != nil {
		s.fail(err)
		return
	}
	s.display.SetFormulaText(lhs + " " + s.op.String() + " " + rhs + " =")
	s.input, s.pending = "", false
	s.showInput()
}

func (s *Session) plusMinus() {
	if s.input != "" {
		if strings.HasPrefix(s.input, "-") {
			s.input = s.input[1:]
		} else {
			s.input = "-" + s.input
		}
		s.showInput()
		return
	}
	err := s.eng.neg()
	if err != nil {
		s.fail(err)
		return
	}
	s.showInput()
}

// showInput shows the number being typed, or the current value if
// nothing is typed.
func (s *Session) showInput() {
	if s.input == "" {
		s.display.SetInputText(s.eng.number())
		return
	}
	s.display.SetInputText(s.input)
}

func (s *Session) showMem() {
	if _, ok := s.eng.saved(); ok {
		s.display.SetMemText("M")
		return
	}
	s.display.SetMemText("")
}

// fail drops the number being typed and shows err.
// The accumulator is left as it was.
func (s *Session) fail(err error) {
	s.logger.Info().Err(err).Str("input", s.input).Msg("Operation failed")
	s.input = ""
	s.display.SetErrorText(errorText(err))
}

// errorText returns the message shown for err.
func errorText(err error) string {
	switch {
	case errors.Is(err, calculator.ErrIntegerUnderflow):
		return "Integer underflow"
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "Division by zero"
	case errors.Is(err, calculator.ErrZeroToZero):
		return "Zero power to zero"
	case errors.Is(err, calculator.ErrNegativeIntegerExponent):
		return "Integer negative power"
	case errors.Is(err, calculator.ErrFractionalExponent):
		return "Fractional power is not supported"
	case errors.Is(err, rational.ErrOverflow):
		return "Rational overflow"
	}
	return err.Error()
}
