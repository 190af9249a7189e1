package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/govalues/calculator"
	"github.com/govalues/calculator/internal/config"
	"github.com/govalues/calculator/session"
	"github.com/rs/zerolog"
)

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

func newReadline(cfg *config.Config) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.History,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
}

const helpText = `Keys:
  0-9            digits
  + - * / ^      add, subtract, multiply, divide, power
  − × ÷ :        subtract, multiply, divide
  =              equals
  c              clear
  ms mr mc       memory save, load and clear
  neg ±          change sign
  bs ⌫           backspace
  . or /         decimal point (floats) or fraction bar (rationals)

Commands:
  :domain [name] show or select the numeric domain
  :help          show this help
  :quit          exit
`

// repl reads key lines until the input ends or :quit is typed.
func repl(r lineReader, p *printer, s *session.Session, screen *session.Screen, logger zerolog.Logger) error {
	p.render(screen)
	for {
		line, err := r.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			quit := command(p, s, screen, line)
			if quit {
				return nil
			}
			continue
		}

		err = s.Type(line)
		if err != nil {
			logger.Debug().Err(err).Msg("Invalid key line")
			p.errorf("%v", err)
			continue
		}
		p.render(screen)
	}
}

// command runs a meta command and reports whether the REPL should exit.
func command(p *printer, s *session.Session, screen *session.Screen, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true

	case ":help", ":h":
		fmt.Fprint(p.w, helpText)

	case ":domain", ":d":
		if len(fields) == 1 {
			fmt.Fprintf(p.w, "%v (%v)\n", s.Kind(), s.Kind().CName())
			return false
		}
		kind, err := calculator.ParseKind(fields[1])
		if err != nil {
			p.errorf("%v", err)
			return false
		}
		err = s.SelectDomain(kind)
		if err != nil {
			p.errorf("%v", err)
			return false
		}
		p.render(screen)

	default:
		p.errorf("unknown command %s, type :help for help", fields[0])
	}
	return false
}
