package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/govalues/calculator/session"
)

// printer writes the display of a session to a terminal.
// Errors are red when color is set.
type printer struct {
	w     io.Writer
	color bool
}

// render prints the formula, if any, and the input line.
// The input line is prefixed by the memory indicator.
func (p *printer) render(screen *session.Screen) {
	if screen.Formula != "" {
		fmt.Fprintf(p.w, "  %s\n", screen.Formula)
	}
	mem := screen.Mem
	if mem == "" {
		mem = " "
	}
	input := screen.Input
	if screen.Error && p.color {
		input = color.RedString("%s", input)
	}
	fmt.Fprintf(p.w, "%s %s\n", mem, input)
}

func (p *printer) errorf(format string, args ...interface{}) {
	format = "Error: " + format + "\n"
	if p.color {
		fmt.Fprint(p.w, color.RedString(format, args...))
	} else {
		fmt.Fprintf(p.w, format, args...)
	}
}
