package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/filecabinet/pkg/logger"
	"github.com/dmitrymomot/filecabinet/pkg/sanitizer"
	"github.com/dmitrymomot/filecabinet/pkg/validator"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
	"github.com/dmitrymomot/filecabinet/svc/export"
)

const (
	defaultPrompt = "> "
	banner        = "File Cabinet Application"
	hint          = "Enter your command, or enter 'help' to get help."
)

// FieldChecker validates one field of a candidate record while it is typed.
// *cabinet.RuleSet implements it.
type FieldChecker interface {
	CheckField(field cabinet.Field, p cabinet.Params) error
}

// Shell is the application context of one interactive session. It is built
// once at startup and passed to every command handler.
type Shell struct {
	store    *cabinet.Store
	exporter *export.Service
	checker  FieldChecker
	in       LineReader
	out      io.Writer
	logger   *slog.Logger
	rules    string
	commands []command
	running  bool
}

// Option configures a Shell.
type Option func(*Shell)

func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		if w != nil {
			s.out = w
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExporter enables the export command.
func WithExporter(e *export.Service) Option {
	return func(s *Shell) {
		s.exporter = e
	}
}

// WithFieldChecker replaces the per-field check run while a record is typed.
// Defaults to the default rule set; the store still validates the complete
// record with its own validator.
func WithFieldChecker(fc FieldChecker) Option {
	return func(s *Shell) {
		if fc != nil {
			s.checker = fc
		}
	}
}

// WithRuleSetName shows the active validation rules in the banner.
func WithRuleSetName(name string) Option {
	return func(s *Shell) {
		s.rules = name
	}
}

// New creates a shell over store reading from in. Panics if store or in is nil.
func New(store *cabinet.Store, in LineReader, opts ...Option) *Shell {
	if store == nil {
		panic("shell: store is required")
	}
	if in == nil {
		panic("shell: line reader is required")
	}

	s := &Shell{
		store:    store,
		checker:  cabinet.DefaultRuleSet(),
		in:       in,
		out:      os.Stdout,
		logger:   slog.Default(),
		commands: commandTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and executes commands until exit, end of input, Ctrl-C or ctx
// cancellation. Command failures are printed and never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	s.println(banner)
	if s.rules != "" {
		s.printf("Using %s validation rules.\n", s.rules)
	}
	s.println(hint)
	s.println()

	s.running = true
	for s.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.readLine(defaultPrompt)
		if err != nil {
			if isEndOfInput(err) {
				s.logger.DebugContext(ctx, "input closed")
				return nil
			}
			return err
		}

		s.execute(ctx, line)
	}
	return nil
}

func (s *Shell) execute(ctx context.Context, line string) {
	line = sanitizer.Line(line)
	if line == "" {
		s.println(hint)
		return
	}

	name, args, _ := strings.Cut(line, " ")
	cmd, ok := s.lookup(name)
	if !ok {
		s.printf("There is no '%s' command.\n", name)
		s.println()
		return
	}

	s.logger.DebugContext(ctx, "executing command", logger.Command(cmd.name))
	cmd.run(s, ctx, strings.TrimSpace(args))
}

func (s *Shell) lookup(name string) (command, bool) {
	for _, c := range s.commands {
		if strings.EqualFold(c.name, name) {
			return c, true
		}
	}
	return command{}, false
}

// readLine prompts once and returns the raw line.
func (s *Shell) readLine(prompt string) (string, error) {
	s.in.SetPrompt(prompt)
	return s.in.Readline()
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// printError prints each validation message on its own line, grouped by
// field in the order fields first failed. Other errors are printed as is.
func (s *Shell) printError(err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		for _, field := range verrs.Fields() {
			for _, msg := range verrs.Get(field) {
				s.printf("%s: %s\n", field, msg)
			}
		}
		return
	}
	s.println(err)
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted)
}
