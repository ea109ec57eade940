//go:generate go run cmd/ast.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chidiwilliams/lm/config"
)

const (
	exitDataErr  = 65
	exitSoftware = 70
)

func main() {
	var (
		filePath   string
		configPath string
		printAST   bool
		verbose    bool
	)

	flag.StringVar(&filePath, "filePath", "", "File path")
	flag.StringVar(&configPath, "config", "", "Config file (default $HOME/"+config.FileName+")")
	flag.BoolVar(&printAST, "ast", false, "Print the AST of each statement before running it")
	flag.BoolVar(&verbose, "v", false, "Log pipeline stages to stderr")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if printAST {
		cfg.PrintAST = true
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	r := newRunner(os.Stdout, os.Stderr, cfg)
	if filePath == "" {
		os.Exit(runPrompt(r, cfg))
	}
	os.Exit(runFile(r, filePath))
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func runFile(r *runner, path string) int {
	file, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return 1
	}

	switch err := r.run(string(file)); {
	case err == nil:
		return 0
	case errors.Is(err, errStatic):
		return exitDataErr
	default:
		return exitSoftware
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
