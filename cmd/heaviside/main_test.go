package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultScenario(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(cliConfig{}, &out))

	assert.Equal(t, "Theta(3) = 1\n", out.String())
}

func TestRun_ExplicitX(t *testing.T) {
	for x, want := range map[float64]string{
		0:    "Theta(0) = 0.5\n",
		-1.5: "Theta(-1.5) = 0\n",
	} {
		var out bytes.Buffer
		require.NoError(t, run(cliConfig{X: x, XSet: true}, &out))
		assert.Equal(t, want, out.String())
	}
}

func TestRun_ScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver:\n  x: -7\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, run(cliConfig{ScenarioPath: path}, &out))
	assert.Equal(t, "Theta(-7) = 0\n", out.String())
}

func TestParseFlags(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SCENARIO_PATH", "")

	cfg, err := parseFlags([]string{"-x", "0"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.XSet)
	assert.Equal(t, 0.0, cfg.X)

	cfg, err = parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.False(t, cfg.XSet)

	_, err = parseFlags([]string{"-x", "abc"}, io.Discard)
	assert.Error(t, err)
}

func TestParseFlags_ScenarioFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte("driver:\n  x: -7\n"), 0644))
	dotEnv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnv, []byte("SCENARIO_PATH="+scenarioPath+"\n"), 0644))

	t.Setenv("ENV", "local")
	t.Setenv("ENV_PATH", dotEnv)
	t.Setenv("SCENARIO_PATH", "")
	os.Unsetenv("SCENARIO_PATH")

	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, scenarioPath, cfg.ScenarioPath)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "Theta(-7) = 0\n", out.String())
}
