// Package shell is the interactive command loop: block for one line,
// check the day boundary, dispatch to exactly one handler, repeat.
package shell

import (
	"errors"
	"strings"

	"github.com/ascarola/c64ux/clock"
	"github.com/ascarola/c64ux/console"
	"github.com/ascarola/c64ux/dirfs"
)

type Shell struct {
	fs   *dirfs.FileSys
	clk  *clock.Clock
	con  console.Console
	user string
	done bool
}

func MkShell(fs *dirfs.FileSys, clk *clock.Clock, con console.Console) *Shell {
	return &Shell{fs: fs, clk: clk, con: con, user: "NOBODY"}
}

// matchKeyword reports whether line begins with keyword followed by end of
// line or exactly one space, and returns the text after the space. A
// keyword that is merely a prefix of a longer word does not match.
func matchKeyword(line string, keyword string) (string, bool) {
	if !strings.HasPrefix(line, keyword) {
		return "", false
	}
	rest := line[len(keyword):]
	if rest == "" {
		return "", true
	}
	if rest[0] == ' ' {
		return rest[1:], true
	}
	return "", false
}

// Dispatch routes one normalized input line to its handler.
func (sh *Shell) Dispatch(line string) {
	if line == "" {
		return
	}
	for i := range commands {
		if arg, ok := matchKeyword(line, commands[i].keyword); ok {
			commands[i].handler(sh, arg)
			return
		}
	}
	sh.con.WriteString("?UNKNOWN COMMAND\n")
}

// Run executes the shell loop until EXIT or end of input.
func (sh *Shell) Run() {
	for !sh.done {
		line, err := sh.con.ReadLine()
		if err != nil {
			break // end of input leaves the loop like EXIT
		}
		sh.clk.CheckRollover()
		sh.Dispatch(line)
	}
}

// Setup runs the one-time session prompts: user name, date, time of day.
// Priming the tick counter happens inside SetTime.
func (sh *Shell) Setup() error {
	name, err := sh.prompt("NAME? ")
	if err != nil {
		return err
	}
	if name != "" {
		sh.user = name
	}
	for {
		d, err := sh.prompt("DATE (YYYY-MM-DD)? ")
		if err != nil {
			return err
		}
		if sh.clk.SetDate(d) == nil {
			break
		}
		sh.con.WriteString("?BAD DATE\n")
	}
	for {
		t, err := sh.prompt("TIME (HH:MM:SS)? ")
		if err != nil {
			return err
		}
		if sh.clk.SetTimeString(t) == nil {
			break
		}
		sh.con.WriteString("?BAD TIME\n")
	}
	sh.con.WriteString("READY. TYPE HELP FOR COMMANDS.\n")
	sh.con.SetPrompt(strings.ToLower(sh.user) + "@c64ux$ ")
	return nil
}

func (sh *Shell) prompt(p string) (string, error) {
	sh.con.SetPrompt(p)
	return sh.con.ReadLine()
}

// report maps store errors onto the terse user-visible messages.
func (sh *Shell) report(err error) {
	switch {
	case errors.Is(err, dirfs.ErrNotFound):
		sh.con.WriteString("?FILE NOT FOUND\n")
	case errors.Is(err, dirfs.ErrDirFull):
		sh.con.WriteString("?DIRECTORY FULL\n")
	case errors.Is(err, dirfs.ErrNoSpace):
		sh.con.WriteString("?OUT OF MEMORY\n")
	default:
		sh.con.WriteString("?ERROR: " + strings.ToUpper(err.Error()) + "\n")
	}
}

func (sh *Shell) usage(keyword string) {
	for i := range commands {
		if commands[i].keyword == keyword {
			sh.con.WriteString("USAGE: " + commands[i].usage + "\n")
			return
		}
	}
}
