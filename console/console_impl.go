package console

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/sys/unix"
)

var _ Console = (*Term)(nil)

// Term is the interactive terminal: readline on the way in, raw writes to
// stdout on the way out.
type Term struct {
	rl *readline.Instance
}

func NewTerm(prompt string) (*Term, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, err
	}
	return &Term{rl: rl}, nil
}

func (t *Term) ReadLine() (string, error) {
	line, err := t.rl.Readline()
	if err != nil { // Ctrl-C or Ctrl-D
		return "", err
	}
	return Normalize(line), nil
}

func (t *Term) WriteString(s string) {
	b := []byte(s)
	for len(b) > 0 {
		n, err := unix.Write(1, b)
		if err != nil {
			panic("console write failed: " + err.Error())
		}
		b = b[n:]
	}
}

func (t *Term) SetPrompt(p string) {
	t.rl.SetPrompt(p)
}

func (t *Term) Clear() {
	t.WriteString("\x1b[2J\x1b[H")
}

func (t *Term) Close() error {
	return t.rl.Close()
}

var _ Console = (*Script)(nil)

// Script feeds canned input lines and captures everything written back.
// ReadLine returns io.EOF once the script is exhausted.
type Script struct {
	lines []string
	pos   int
	out   strings.Builder
}

func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

func (s *Script) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return Normalize(line), nil
}

func (s *Script) WriteString(out string) {
	s.out.WriteString(out)
}

func (s *Script) SetPrompt(string) {}

func (s *Script) Clear() {
	s.out.WriteString("\f")
}

// Output returns everything the shell has written so far.
func (s *Script) Output() string {
	return s.out.String()
}
