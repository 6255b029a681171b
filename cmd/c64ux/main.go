package main

import (
	"fmt"
	"os"

	"github.com/ascarola/c64ux/clock"
	"github.com/ascarola/c64ux/console"
	"github.com/ascarola/c64ux/dirfs"
	"github.com/ascarola/c64ux/jiffy"
	"github.com/ascarola/c64ux/shell"
)

func main() {
	term, err := console.NewTerm("$ ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer term.Close()

	clk := clock.MkClock(jiffy.NewHostCounter())
	sh := shell.MkShell(dirfs.MkFileSys(), clk, term)
	if err := sh.Setup(); err != nil {
		return // Ctrl-C or Ctrl-D during setup
	}
	sh.Run()
}
