package shell

import (
	"fmt"
	"strings"

	"github.com/ascarola/c64ux/common"
	"github.com/ascarola/c64ux/console"
)

const Version = "C64UX 0.2 (24-BIT JIFFY KERNAL)"

type command struct {
	keyword string
	usage   string
	handler func(sh *Shell, arg string)
}

// Dispatch order is fixed; the first keyword whose boundary matches wins.
// Filled in init: the handlers reach back into the table for HELP and
// usage lines, so a composite literal would cycle.
var commands []command

func init() {
	commands = []command{
		{"HELP", "HELP", (*Shell).cmdHelp},
		{"LS", "LS", (*Shell).cmdLs},
		{"STAT", "STAT <NAME>", (*Shell).cmdStat},
		{"CAT", "CAT <NAME>", (*Shell).cmdCat},
		{"WRITE", "WRITE <NAME> <TEXT>", (*Shell).cmdWrite},
		{"RM", "RM <NAME>", (*Shell).cmdRm},
		{"MEM", "MEM", (*Shell).cmdMem},
		{"UNAME", "UNAME", (*Shell).cmdUname},
		{"WHOAMI", "WHOAMI", (*Shell).cmdWhoami},
		{"EXIT", "EXIT", (*Shell).cmdExit},
		{"ECHO", "ECHO <TEXT>", (*Shell).cmdEcho},
		{"DATE", "DATE", (*Shell).cmdDate},
		{"TIME", "TIME", (*Shell).cmdTime},
		{"CLEAR", "CLEAR", (*Shell).cmdClear},
	}
}

func (sh *Shell) cmdHelp(arg string) {
	for i := range commands {
		sh.con.WriteString(commands[i].usage + "\n")
	}
}

func (sh *Shell) cmdLs(arg string) {
	infos := sh.fs.List()
	if len(infos) == 0 {
		sh.con.WriteString("DIRECTORY EMPTY\n")
		return
	}
	for _, in := range infos {
		sh.con.WriteString(fmt.Sprintf("%-8s ", in.Name))
		console.WriteDec(sh.con, in.Length)
		sh.con.WriteString(" " + in.Date + " " + in.Time + "\n")
	}
}

func (sh *Shell) cmdStat(arg string) {
	if arg == "" {
		sh.usage("STAT")
		return
	}
	in, err := sh.fs.Stat(arg)
	if err != nil {
		sh.report(err)
		return
	}
	sh.con.WriteString("NAME:    " + in.Name + "\n")
	sh.con.WriteString("LENGTH:  ")
	console.WriteDec(sh.con, in.Length)
	sh.con.WriteString("\nSTART:   ")
	console.WriteHex(sh.con, in.Start)
	sh.con.WriteString("\nCREATED: " + in.Date + " " + in.Time + "\n")
}

func (sh *Shell) cmdCat(arg string) {
	if arg == "" {
		sh.usage("CAT")
		return
	}
	content, err := sh.fs.Read(arg)
	if err != nil {
		sh.report(err)
		return
	}
	sh.con.WriteString(string(content) + "\n")
}

func (sh *Shell) cmdWrite(arg string) {
	if arg == "" {
		sh.usage("WRITE")
		return
	}
	// no text after the name stores a zero-length file
	name, text, _ := strings.Cut(arg, " ")
	err := sh.fs.Create(name, []byte(text), sh.clk.Date(), sh.clk.Sample().String())
	if err != nil {
		sh.report(err)
	}
}

func (sh *Shell) cmdRm(arg string) {
	if arg == "" {
		sh.usage("RM")
		return
	}
	if err := sh.fs.Delete(arg); err != nil {
		sh.report(err)
	}
}

func (sh *Shell) cmdMem(arg string) {
	sh.con.WriteString("ENTRIES: ")
	console.WriteDec(sh.con, uint16(sh.fs.Count()))
	sh.con.WriteString("/")
	console.WriteDec(sh.con, uint16(common.DirMax))
	sh.con.WriteString("\nNEXT:    ")
	console.WriteHex(sh.con, sh.fs.Watermark())
	sh.con.WriteString("\nFREE:    ")
	console.WriteDec(sh.con, uint16(sh.fs.Free()))
	sh.con.WriteString(" BYTES\n")
}

func (sh *Shell) cmdUname(arg string) {
	sh.con.WriteString(Version + "\n")
}

func (sh *Shell) cmdWhoami(arg string) {
	sh.con.WriteString(sh.user + "\n")
}

func (sh *Shell) cmdExit(arg string) {
	sh.done = true
}

func (sh *Shell) cmdEcho(arg string) {
	sh.con.WriteString(arg + "\n")
}

func (sh *Shell) cmdDate(arg string) {
	sh.con.WriteString(sh.clk.Date() + "\n")
}

func (sh *Shell) cmdTime(arg string) {
	sh.con.WriteString(sh.clk.Sample().String() + "\n")
}

func (sh *Shell) cmdClear(arg string) {
	sh.con.Clear()
}
