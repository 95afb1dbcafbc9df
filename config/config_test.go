package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/tipout-engine/config"
	"github.com/warp/tipout-engine/generic"
	"go.uber.org/zap"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("engine:\n  rounding: 0.05\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Engine.Rounding)
	assert.Equal(t, "exact", cfg.Engine.IDMatching, "missing keys keep defaults")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_TIPOUT_MATCHING", "fold")

	cfg, err := config.Parse([]byte("engine:\n  id_matching: ${TEST_TIPOUT_MATCHING}\n"))
	require.NoError(t, err)

	assert.Equal(t, "fold", cfg.Engine.IDMatching)
}

func TestParse_RejectsNegativeRounding(t *testing.T) {
	_, err := config.Parse([]byte("engine:\n  rounding: -1\n"))
	assert.Error(t, err)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("engine: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tipout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  format: console\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0.25, cfg.Engine.Rounding)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TIPOUT_ROUNDING", "1")
	t.Setenv("TIPOUT_ID_MATCHING", "fold")
	t.Setenv("TIPOUT_LOG_LEVEL", "warn")
	t.Setenv("TIPOUT_LOG_FORMAT", "")

	cfg := config.LoadFromEnv()

	assert.Equal(t, 1.0, cfg.Engine.Rounding)
	assert.Equal(t, "fold", cfg.Engine.IDMatching)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnv_IgnoresBadRounding(t *testing.T) {
	t.Setenv("TIPOUT_ROUNDING", "quarter")
	assert.Equal(t, 0.25, config.LoadFromEnv().Engine.Rounding)
}

func TestLoadOrEnvWithPath_FallsBack(t *testing.T) {
	t.Setenv("TIPOUT_ROUNDING", "0.5")

	cfg := config.LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 0.5, cfg.Engine.Rounding)
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.Rounding = 0.05
	cfg.Engine.IDMatching = "case_insensitive"

	e := generic.New(cfg.EngineOptions(zap.NewNop())...)

	assert.Equal(t, 0.05, e.Granularity())
	assert.Equal(t, generic.MatchFold, e.IDMatching())
}
