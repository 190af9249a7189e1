package session

// Display receives the texts a calculator window shows.
type Display interface {
	// SetInputText shows the number being typed or the current value.
	SetInputText(text string)
	// SetErrorText shows an error message in place of the input.
	SetErrorText(text string)
	// SetFormulaText shows the operation in progress, such as "5 +".
	SetFormulaText(text string)
	// SetMemText shows "M" while the memory holds a value, and "" otherwise.
	SetMemText(text string)
	// SetExtraKey shows the domain specific key with the given label,
	// or hides it if ok is false.
	SetExtraKey(label string, ok bool)
}

// Screen is a Display that keeps the last texts it received.
type Screen struct {
	Input   string
	Error   bool // true if Input holds an error message
	Formula string
	Mem     string
	Extra   string // empty if the extra key is hidden
}

var _ Display = (*Screen)(nil)

func (s *Screen) SetInputText(text string) {
	s.Input, s.Error = text, false
}

func (s *Screen) SetErrorText(text string) {
	s.Input, s.Error = text, true
}

func (s *Screen) SetFormulaText(text string) {
	s.Formula = text
}

func (s *Screen) SetMemText(text string) {
	s.Mem = text
}

func (s *Screen) SetExtraKey(label string, ok bool) {
	if !ok {
		label = ""
	}
	s.Extra = label
}
