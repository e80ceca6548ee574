package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(20<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, "standard", cfg.Report.Mode)
	assert.False(t, cfg.Report.Pretty)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTASPASA_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("NOTASPASA_REPORT_MODE", "verbose")
	t.Setenv("NOTASPASA_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "verbose", cfg.Report.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NOTASPASA_REPORT_FORMAT=text\n"), 0644))
	t.Setenv("NOTASPASA_REPORT_FORMAT", "")
	os.Unsetenv("NOTASPASA_REPORT_FORMAT")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "notaspasa.yaml")
	yamlDoc := `
logging:
  format: text
server:
  addr: ":7070"
  write_timeout: 2m
report:
  pretty: true
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level, "keys missing from the file keep their defaults")
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Report.Pretty)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "bad mode", env: map[string]string{"NOTASPASA_REPORT_MODE": "full"}},
		{name: "bad log format", env: map[string]string{"NOTASPASA_LOGGING_FORMAT": "xml"}},
		{name: "bad duration", env: map[string]string{"NOTASPASA_SERVER_READ_TIMEOUT": "soon"}},
		{name: "unknown file key", file: "server:\n  port: 80\n"},
		{name: "missing file", file: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			switch tt.file {
			case "":
			case "-":
				path = filepath.Join(dir, "missing.yaml")
			default:
				path = filepath.Join(dir, "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0644))
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
