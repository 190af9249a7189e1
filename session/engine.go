package session

import (
	"fmt"

	"github.com/govalues/calculator"
	"github.com/govalues/calculator/rational"
)

// engine is an accumulator of any domain, driven by operands in their
// text form.
type engine interface {
	kind() calculator.Kind
	format(s string) (string, error)
	set(s string) error
	apply(op Operation, s string) error
	neg() error
	number() string
	save()
	load()
	clearSaved()
	saved() (string, bool)
	reset()
}

func newEngine(kind calculator.Kind) (engine, error) {
	switch kind {
	case calculator.Float64:
		return &accumulator[float64]{calculator.NewFloat[float64]()}, nil
	case calculator.Float32:
		return &accumulator[float32]{calculator.NewFloat[float32]()}, nil
	case calculator.Uint8:
		return &accumulator[uint8]{calculator.NewInteger[uint8]()}, nil
	case calculator.Int32:
		return &accumulator[int32]{calculator.NewInteger[int32]()}, nil
	case calculator.Int64:
		return &accumulator[int64]{calculator.NewInteger[int64]()}, nil
	case calculator.Uint:
		return &accumulator[uint]{calculator.NewInteger[uint]()}, nil
	case calculator.Rational:
		return &accumulator[rational.Rational]{calculator.NewRational()}, nil
	}
	return nil, fmt.Errorf("unsupported domain %v", kind)
}

type accumulator[N any] struct {
	acc *calculator.Accumulator[N]
}

func (e *accumulator[N]) kind() calculator.Kind {
	return e.acc.Domain().Kind()
}

// format returns the canonical text of the operand s.
func (e *accumulator[N]) format(s string) (string, error) {
	v, err := e.acc.Domain().Parse(s)
	if err != nil {
		return "", err
	}
	return e.acc.Domain().Format(v), nil
}

func (e *accumulator[N]) set(s string) error {
	v, err := e.acc.Domain().Parse(s)
	if err != nil {
		return err
	}
	e.acc.Set(v)
	return nil
}

func (e *accumulator[N]) apply(op Operation, s string) error {
	v, err := e.acc.Domain().Parse(s)
	if err != nil {
		return err
	}
	switch op {
	case Add:
		return e.acc.Add(v)
	case Sub:
		return e.acc.Sub(v)
	case Mul:
		return e.acc.Mul(v)
	case Div:
		return e.acc.Div(v)
	case Pow:
		return e.acc.Pow(v)
	}
	return fmt.Errorf("unknown operation %v", op)
}

func (e *accumulator[N]) neg() error {
	return e.acc.Neg()
}

func (e *accumulator[N]) number() string {
	return e.acc.Domain().Format(e.acc.Number())
}

func (e *accumulator[N]) save() { e.acc.Save() }

func (e *accumulator[N]) load() { e.acc.Load() }

func (e *accumulator[N]) clearSaved() { e.acc.ClearSaved() }

func (e *accumulator[N]) saved() (string, bool) {
	v, ok := e.acc.Saved()
	if !ok {
		return "", false
	}
	return e.acc.Domain().Format(v), true
}

func (e *accumulator[N]) reset() { e.acc.Reset() }
