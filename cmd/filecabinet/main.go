package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/filecabinet/pkg/config"
	"github.com/dmitrymomot/filecabinet/pkg/environment"
	"github.com/dmitrymomot/filecabinet/pkg/logger"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
	"github.com/dmitrymomot/filecabinet/svc/export"
	"github.com/dmitrymomot/filecabinet/svc/shell"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const serviceName = "filecabinet"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Console file cabinet for person records",
		Long:          "An interactive record manager: create, edit, find, list and export person records kept in memory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fv.envFile != "" {
				if err := config.LoadEnv(fv.envFile); err != nil {
					return err
				}
			}

			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			cfg.applyFlags(cmd.Flags(), fv)

			err := run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&fv.validationRules, "validation-rules", "v", "default", "validation rules: default or custom")
	flags.StringVar(&fv.rulesFile, "rules-file", "", "YAML file overriding the custom validation rules")
	flags.StringVar(&fv.historyFile, "history-file", "", "file to keep interactive command history in")
	flags.StringVar(&fv.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&fv.exportDir, "export-dir", ".", "directory for exported files (local storage)")
	flags.StringVar(&fv.envFile, "env-file", "", "extra .env file read before the environment")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", serviceName, version)
		},
	}
}

// run wires the application and blocks until the shell exits.
func run(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	kind, err := cabinet.ParseRuleSetKind(cfg.ValidationRules)
	if err != nil {
		return err
	}
	rules, err := cabinet.ResolveValidator(kind, cfg.RulesFile)
	if err != nil {
		return err
	}

	store := cabinet.NewStore(rules, cabinet.WithLogger(log.With(logger.Component("store"))))

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return err
	}
	exporter := export.NewService(store, storage, export.WithLogger(log.With(logger.Component("export"))))

	reader, out, closeReader, err := newLineReader(cfg, stdin, stdout)
	if err != nil {
		return err
	}
	defer closeReader()

	log.DebugContext(ctx, "starting shell",
		slog.String("rules", rules.Name),
		slog.String("storage", cfg.ExportStorage),
	)

	sh := shell.New(store, reader,
		shell.WithOutput(out),
		shell.WithLogger(log.With(logger.Component("shell"))),
		shell.WithExporter(exporter),
		shell.WithRuleSetName(rules.Name),
	)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(slog.String("version", version)),
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.LogFormat)
	}
	return logger.New(opts...), nil
}

// newLineReader uses readline when stdin is a terminal and a plain scanner
// for pipes, in which case prompts are not echoed.
func newLineReader(cfg Config, stdin io.Reader, stdout io.Writer) (shell.LineReader, io.Writer, func(), error) {
	if f, ok := stdin.(*os.File); ok && isTerminal(f) {
		tr, err := shell.NewTerminalReader(cfg.HistoryFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize readline: %w", err)
		}
		return tr, tr.Stdout(), func() { _ = tr.Close() }, nil
	}
	return shell.NewScannerReader(stdin, nil), stdout, func() {}, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
