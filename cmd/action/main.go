package main

import (
	"os"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"github.com/ascarola/c64ux/clock"
	"github.com/ascarola/c64ux/console"
	"github.com/ascarola/c64ux/dirfs"
	"github.com/ascarola/c64ux/jiffy"
	"github.com/ascarola/c64ux/shell"
)

func main() {
	scriptFile := strings.TrimSpace(githubactions.GetInput("script"))
	user := strings.TrimSpace(githubactions.GetInput("user"))
	date := strings.TrimSpace(githubactions.GetInput("date"))
	tod := strings.TrimSpace(githubactions.GetInput("time"))

	if user == "" {
		user = "ci"
	}
	if date == "" {
		date = "2026-01-01"
	}
	if tod == "" {
		tod = "00:00:00"
	}

	raw, err := os.ReadFile(scriptFile)
	if err != nil {
		githubactions.Fatalf("failed to read script %q. %v", scriptFile, err)
	}

	lines := []string{user, date, tod}
	lines = append(lines, strings.Split(strings.TrimRight(string(raw), "\n"), "\n")...)

	con := console.NewScript(lines...)
	clk := clock.MkClock(jiffy.NewMemCounter())
	sh := shell.MkShell(dirfs.MkFileSys(), clk, con)
	if err := sh.Setup(); err != nil {
		githubactions.Fatalf("session setup failed. %v", err)
	}
	sh.Run()

	for _, line := range strings.Split(strings.TrimRight(con.Output(), "\n"), "\n") {
		githubactions.Infof("%s", line)
	}
}
