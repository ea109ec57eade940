package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/chidiwilliams/lm/config"
)

const (
	promptCont = "... "
	banner     = "lm REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands."
	helpText   = `REPL commands:
  :env     List the bound variables
  :help    Show this help
  :quit    Exit the REPL`
)

func runPrompt(r *runner, cfg config.Config) int {
	fmt.Fprintln(r.stdOut, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				r.logger.Warn("cannot save history", "path", histPath, "err", err)
			}
		}()
	}

	for {
		source, ok := readSource(ln, cfg.Prompt)
		if !ok {
			fmt.Fprintln(r.stdOut)
			return 0
		}

		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := r.command(trimmed); quit {
				return 0
			}
			continue
		}

		// errors are already reported; the session carries on
		_ = r.run(source)
	}
}

// readSource reads lines until they form a complete program or
// a program with an error that more input cannot fix. It returns
// false when the input is closed.
func readSource(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// command runs a REPL command and reports whether the REPL should exit
func (r *runner) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(r.stdOut, helpText)
	case ":env":
		environment := r.interpreter.Environment()
		for _, name := range environment.Names() {
			value, _ := environment.Get(name)
			fmt.Fprintf(r.stdOut, "%s = %s\n", name, value)
		}
	default:
		fmt.Fprintf(r.stdErr, "unknown command %s. Type :help for commands.\n", cmd)
	}
	return false
}
