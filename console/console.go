// Package console is the terminal the shell talks to: one full line in,
// text out. Input lines reach the shell already trimmed and uppercased.
package console

import (
	"strconv"
	"strings"
)

type Console interface {
	// ReadLine blocks for one full input line, normalized by Normalize.
	ReadLine() (string, error)

	WriteString(s string)

	// SetPrompt changes the text shown before the next ReadLine.
	SetPrompt(p string)

	// Clear erases the display.
	Clear()
}

// Normalize applies the input contract: surrounding space trimmed, the
// whole line uppercased.
func Normalize(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}

// WriteDec writes v as decimal text.
func WriteDec(c Console, v uint16) {
	c.WriteString(strconv.FormatUint(uint64(v), 10))
}

// WriteHex writes v as four hex digits with a $ prefix.
func WriteHex(c Console, v uint16) {
	s := strings.ToUpper(strconv.FormatUint(uint64(v), 16))
	c.WriteString("$" + strings.Repeat("0", 4-len(s)) + s)
}
