package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.AutoUpdate)
	assert.Equal(t, "svg", cfg.Plot.Format)
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := write(t, "config.yaml", `
addr: ":9000"
seed: 7
plot:
  format: png
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "png", cfg.Plot.Format)
	assert.Equal(t, 16.0, cfg.Plot.WidthCm)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(write(t, "bad.yaml", "addr: [1, 2"))
	assert.Error(t, err)
}

func TestFlagsOverride(t *testing.T) {
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--seed=3", "--auto-update=false", "--plot-format=pdf"}))

	assert.Equal(t, uint64(3), cfg.Seed)
	assert.False(t, cfg.AutoUpdate)
	assert.Equal(t, "pdf", cfg.Plot.Format)
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Addr = ""
	cfg.LogLevel = "loud"
	cfg.LogFormat = "xml"
	cfg.Plot.WidthCm = 0
	cfg.Plot.Format = "bmp"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"addr", "log_level", "log_format", "plot size", "plot format"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestTransitionMatrix(t *testing.T) {
	cfg := Default()
	m, err := cfg.TransitionMatrix()
	require.NoError(t, err)
	assert.Nil(t, m)

	cfg.MarkovMatrix = write(t, "m.txt", "0.5 0.5\n0.1 0.9\n")
	m, err = cfg.TransitionMatrix()
	require.NoError(t, err)
	assert.Equal(t, 0.9, m.At(1, 1))

	cfg.MarkovMatrix = write(t, "bad.txt", "0.5 0.6\n0.1 0.9\n")
	_, err = cfg.TransitionMatrix()
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestApplyFlagsOverFile(t *testing.T) {
	path := write(t, "config.yaml", "addr: \":9000\"\nseed: 7\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Default().BindFlags(fs)
	fs.String("config", "", "")
	require.NoError(t, fs.Parse([]string{"--seed", "11", "--config", path}))

	cfg, err := Apply(path, fs)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, uint64(11), cfg.Seed)

	cfg, err = Apply(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
}
