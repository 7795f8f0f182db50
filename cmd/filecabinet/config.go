package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/filecabinet/pkg/file"
)

var (
	errUnknownStorage   = errors.New("unknown export storage")
	errInvalidLogFormat = errors.New("invalid log format")
)

// Config is read from the environment (and .env) before flags are applied.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT"`

	ValidationRules string `env:"FILECABINET_VALIDATION_RULES" envDefault:"default"`
	RulesFile       string `env:"FILECABINET_RULES_FILE"`
	HistoryFile     string `env:"FILECABINET_HISTORY_FILE"`

	ExportStorage    string        `env:"FILECABINET_EXPORT_STORAGE" envDefault:"local"`
	ExportDir        string        `env:"FILECABINET_EXPORT_DIR" envDefault:"."`
	S3Bucket         string        `env:"FILECABINET_S3_BUCKET"`
	S3Region         string        `env:"FILECABINET_S3_REGION"`
	S3Prefix         string        `env:"FILECABINET_S3_PREFIX"`
	S3AccessKeyID    string        `env:"FILECABINET_S3_ACCESS_KEY_ID"`
	S3SecretKey      string        `env:"FILECABINET_S3_SECRET_KEY"`
	S3Endpoint       string        `env:"FILECABINET_S3_ENDPOINT"`
	S3ForcePathStyle bool          `env:"FILECABINET_S3_FORCE_PATH_STYLE"`
	S3UploadTimeout  time.Duration `env:"FILECABINET_S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}

// flagValues mirrors the command line flags.
type flagValues struct {
	validationRules string
	rulesFile       string
	historyFile     string
	logLevel        string
	exportDir       string
	envFile         string
}

// applyFlags overrides cfg with every flag set explicitly on the command line.
func (cfg *Config) applyFlags(fs *pflag.FlagSet, fv flagValues) {
	if fs.Changed("validation-rules") {
		cfg.ValidationRules = fv.validationRules
	}
	if fs.Changed("rules-file") {
		cfg.RulesFile = fv.rulesFile
	}
	if fs.Changed("history-file") {
		cfg.HistoryFile = fv.historyFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if fs.Changed("export-dir") {
		cfg.ExportDir = fv.exportDir
	}
}

func newStorage(ctx context.Context, cfg Config) (file.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.ExportStorage)) {
	case "", "local":
		return file.NewLocalStorage(cfg.ExportDir)
	case "s3":
		return file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			Prefix:         cfg.S3Prefix,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, file.WithS3UploadTimeout(cfg.S3UploadTimeout))
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownStorage, cfg.ExportStorage)
	}
}
