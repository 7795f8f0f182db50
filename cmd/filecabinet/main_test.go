package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filecabinet/pkg/config"
	"github.com/dmitrymomot/filecabinet/pkg/file"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		AppEnv:          "development",
		LogLevel:        "error",
		ValidationRules: "custom",
		ExportStorage:   "local",
		ExportDir:       dir,
	}
	in := strings.NewReader(strings.Join([]string{
		"create", "Anna", "Ray", "1990-05-01", "M", "3", "1000",
		"export csv out.csv",
		"exit",
	}, "\n") + "\n")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, in, &out))

	assert.Contains(t, out.String(), "Using custom validation rules.\n")
	assert.Contains(t, out.String(), "Record #1 is created.\n")
	assert.Contains(t, out.String(), "All records are exported to file out.csv.\n")

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "1, Anna, Ray, 1990-May-01, M, 3, 1000.00\n", string(data))
}

func TestRun_ConfigErrors(t *testing.T) {
	base := Config{LogLevel: "error", ValidationRules: "default", ExportDir: t.TempDir()}

	cfg := base
	cfg.ValidationRules = "strict"
	assert.ErrorIs(t, run(context.Background(), cfg, strings.NewReader(""), io.Discard), cabinet.ErrUnknownRuleSet)

	cfg = base
	cfg.ValidationRules = "custom"
	cfg.RulesFile = filepath.Join(t.TempDir(), "missing.yaml")
	assert.ErrorIs(t, run(context.Background(), cfg, strings.NewReader(""), io.Discard), cabinet.ErrInvalidRuleSet)

	cfg = base
	cfg.ExportStorage = "ftp"
	assert.ErrorIs(t, run(context.Background(), cfg, strings.NewReader(""), io.Discard), errUnknownStorage)

	cfg = base
	cfg.LogFormat = "xml"
	assert.ErrorIs(t, run(context.Background(), cfg, strings.NewReader(""), io.Discard), errInvalidLogFormat)
}

func TestNewStorage(t *testing.T) {
	storage, err := newStorage(context.Background(), Config{ExportStorage: "LOCAL", ExportDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &file.LocalStorage{}, storage)

	_, err = newStorage(context.Background(), Config{ExportStorage: "s3"})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)

	storage, err = newStorage(context.Background(), Config{
		ExportStorage:    "s3",
		S3Bucket:         "cabinet",
		S3Region:         "us-east-1",
		S3AccessKeyID:    "key",
		S3SecretKey:      "secret",
		S3Endpoint:       "http://localhost:9000",
		S3ForcePathStyle: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "s3://cabinet/out.csv", storage.Location("out.csv"))
}

func TestRootCmd(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"version"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "filecabinet dev\n", out.String())
	})

	t.Run("flags override configuration", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader("stat\nexit\n"))
		cmd.SetOut(&out)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"-v", "custom", "--export-dir", t.TempDir(), "--log-level", "error"})
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), "Using custom validation rules.\n")
		assert.Contains(t, out.String(), "0 record(s).\n")
	})

	t.Run("unknown rule set fails", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--validation-rules", "strict", "--export-dir", t.TempDir()})
		assert.ErrorIs(t, cmd.Execute(), cabinet.ErrUnknownRuleSet)
	})

	t.Run("missing env file fails", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")})
		assert.ErrorIs(t, cmd.Execute(), config.ErrLoadingEnvFile)
	})
}

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--rules-file", "rules.yaml", "--history-file", "/tmp/h"}))

	cfg := Config{ValidationRules: "custom", LogLevel: "info", RulesFile: "env.yaml"}
	fv := flagValues{rulesFile: "rules.yaml", historyFile: "/tmp/h"}
	cfg.applyFlags(cmd.Flags(), fv)

	assert.Equal(t, "custom", cfg.ValidationRules)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "rules.yaml", cfg.RulesFile)
	assert.Equal(t, "/tmp/h", cfg.HistoryFile)
}
