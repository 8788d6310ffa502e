package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/carryloop/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CARRYLOOP_SPEED", "320")
	t.Setenv("CARRYLOOP_ACTION_INTERVAL", "250ms")
	t.Setenv("CARRYLOOP_DEBUG", "true")
	t.Setenv("CARRYLOOP_SHELL_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 320.0, cfg.Speed)
	assert.Equal(t, 250*time.Millisecond, cfg.ActionInterval)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":9090", cfg.ShellAddr)
	assert.Equal(t, 1500*time.Millisecond, cfg.ProcessDelay)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CARRYLOOP_TITLE=From File\nCARRYLOOP_TPS=30\n"), 0o644))

	// godotenv sets process variables; make sure they are cleared afterwards.
	t.Setenv("CARRYLOOP_TITLE", "")
	t.Setenv("CARRYLOOP_TPS", "")
	os.Unsetenv("CARRYLOOP_TITLE")
	os.Unsetenv("CARRYLOOP_TPS")

	cfg, err := Load(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)
	assert.Equal(t, "From File", cfg.Title)
	assert.Equal(t, 30, cfg.TPS)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"CARRYLOOP_WIDTH":         "wide",
		"CARRYLOOP_PROCESS_DELAY": "soon",
		"CARRYLOOP_DEBUG":         "maybe",
		"CARRYLOOP_SPEED":         "-5",
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFlagsOverride(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"-speed", "150", "-layout", "custom.yaml", "-debug"}))

	assert.Equal(t, 150.0, cfg.Speed)
	assert.Equal(t, "custom.yaml", cfg.LayoutPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 1024, cfg.Width)
}

func TestLayout(t *testing.T) {
	layout, err := Default().Layout()
	require.NoError(t, err)
	assert.Equal(t, zone.DefaultLayout(), layout)

	cfg := Default()
	cfg.LayoutPath = filepath.Join(t.TempDir(), "nope.yaml")
	_, err = cfg.Layout()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
