package logging

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestWriter routes log lines to a test's log.
type TestWriter struct {
	Test testing.TB
}

var _ io.Writer = (*TestWriter)(nil)

func (l *TestWriter) Write(b []byte) (int, error) {
	s := string(b)
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
	}
	l.Test.Log(s)
	return len(b), nil
}

// NewTestLogger returns a debug level logger that writes to the test log.
func NewTestLogger(t testing.TB, format string) zerolog.Logger {
	w, err := NewConsoleWriterWith(&TestWriter{Test: t}, format)
	if err != nil {
		t.Fatalf("Unsupported log format: %s", format)
	}
	return zerolog.New(w).Level(zerolog.DebugLevel)
}
