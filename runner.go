package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chidiwilliams/lm/ast"
	"github.com/chidiwilliams/lm/config"
	"github.com/chidiwilliams/lm/interpret"
	"github.com/chidiwilliams/lm/parse"
	"github.com/chidiwilliams/lm/resolve"
	"github.com/chidiwilliams/lm/scan"
)

// errStatic marks lexical and syntax errors, which
// stop a program before any of it runs
var errStatic = errors.New("static error")

func newRunner(stdOut io.Writer, stdErr io.Writer, cfg config.Config) *runner {
	return &runner{
		interpreter: interpret.NewInterpreter(stdOut),
		stdOut:      stdOut,
		stdErr:      stdErr,
		cfg:         cfg,
		logger:      newLogger(stdErr, cfg.LogLevel),
	}
}

// runner runs source texts against one interpreter,
// so bindings persist from one run to the next
type runner struct {
	interpreter *interpret.Interpreter
	stdOut      io.Writer
	stdErr      io.Writer
	cfg         config.Config
	logger      *slog.Logger
}

// run scans, parses and interprets source. Errors are reported to
// stdErr and also returned; lexical and syntax errors wrap errStatic.
func (r *runner) run(source string) error {
	tokens, err := scan.NewScanner(source).ScanTokens()
	if err != nil {
		r.report(err)
		return fmt.Errorf("%w: %w", errStatic, err)
	}
	r.logger.Debug("scanned", "tokens", len(tokens))

	parser := parse.NewParser(tokens)
	parser.SetMaxDepth(r.cfg.MaxDepth)
	statements, err := parser.Parse()
	if err != nil {
		r.report(err)
		return fmt.Errorf("%w: %w", errStatic, err)
	}
	r.logger.Debug("parsed", "statements", len(statements))

	r.resolve(statements)

	if r.cfg.PrintAST {
		for _, stmt := range statements {
			fmt.Fprintln(r.stdOut, ast.SprintStmt(stmt))
		}
	}

	if err := r.interpreter.Interpret(statements); err != nil {
		r.report(err)
		return err
	}
	r.logger.Debug("interpreted", "bindings", r.interpreter.Environment().Len())
	return nil
}

// resolve logs the variable uses that no declaration binds.
// They are not errors: the interpreter reports them if they run.
func (r *runner) resolve(statements []ast.Stmt) {
	if !r.logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	resolver := resolve.NewResolver(r.interpreter.Environment().Names()...)
	resolution := resolver.ResolveStmts(statements)
	for _, unbound := range resolution.Unbound {
		r.logger.Info("unbound variable", "name", unbound.Name.Lexeme, "line", unbound.Name.Line)
	}
	r.logger.Debug("resolved", "bindings", len(resolution.Bindings), "unbound", len(resolution.Unbound))
}

func (r *runner) report(err error) {
	_, _ = fmt.Fprintln(r.stdErr, err.Error())
}

// incomplete reports whether source failed only because it ended too
// early: inside a string or before a statement was finished
func incomplete(source string) bool {
	tokens, err := scan.NewScanner(source).ScanTokens()
	if err != nil {
		var errs scan.ErrorList
		if !errors.As(err, &errs) {
			return false
		}
		for _, e := range errs {
			if e.Kind != scan.UnterminatedString {
				return false
			}
		}
		return true
	}

	_, err = parse.NewParser(tokens).Parse()
	var errs parse.ErrorList
	if !errors.As(err, &errs) || len(errs) != 1 {
		return false
	}
	return errs[0].Token.TokenType == ast.TokenEof && !errors.Is(errs[0], parse.ErrNestingTooDeep)
}
