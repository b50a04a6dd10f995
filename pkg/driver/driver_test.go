package driver

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, "max_steps: 500\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), cfg.MaxSteps)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.Color)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadConfigReadsAllKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, strings.Join([]string{
		"log_level: debug",
		"log_format: json",
		"color: false",
		"max_steps: 10",
		"max_stack_bytes: 1048576",
		"history_file: /tmp/hist",
	}, "\n"))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Color)
	assert.Equal(t, 1048576, cfg.MaxStackBytes)
	assert.Equal(t, "/tmp/hist", cfg.HistoryPath())
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, "")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LogLevel, cfg.LogLevel)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, "log_levle: debug\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_levle")
}

func TestLoadConfigAggregatesValidationIssues(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFileName, "log_level: loud\nlog_format: xml\nmax_stack_bytes: -1\n")
	_, err := LoadConfig(path)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 3)
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, ConfigFileName, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	_, err := FindConfig(dir)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Skip("a lambda.yml exists above the temp directory")
	}
	cfg, err := ResolveConfig("", dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewLoggerHonoursFormat(t *testing.T) {
	var b strings.Builder
	cfg := DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "info"
	cfg.NewLogger(&b).Info("hello", "k", 1)
	assert.Contains(t, b.String(), `"msg":"hello"`)
	assert.Contains(t, b.String(), `"k":1`)
}

func TestLoadSuite(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lists.yml", `
cases:
  - source: 'hd 1:2:#'
    expect: '1.0'
  - source: 'hd 1'
    error: 'non-list'
`)
	suite, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, "lists", suite.Name)
	require.Len(t, suite.Cases, 2)
	assert.False(t, suite.Cases[0].WantsError())
	assert.True(t, suite.Cases[1].WantsError())
}

func TestLoadSuiteValidatesCases(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yml", `
name: bad
cases:
  - expect: '1.0'
  - source: '1'
  - source: '1'
    expect: '1.0'
    error: 'boom'
`)
	_, err := LoadSuite(path)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"cases[0].source must be provided",
		"cases[1] needs expect or error",
		"cases[2] must not set both expect and error",
	}, verr.Issues)
}

func TestSuiteRunReportsFailures(t *testing.T) {
	suite := &Suite{Name: "s", Cases: []Case{
		{Source: "a", Expect: "A"},
		{Source: "b", Expect: "B"},
		{Source: "c", Error: "boom"},
		{Source: "d", Error: "boom"},
	}}
	eval := func(src string) (string, error) {
		switch src {
		case "a":
			return "A", nil
		case "c":
			return "", errors.New("it went boom")
		default:
			return strings.ToLower(src), nil
		}
	}
	results := suite.Run(eval)
	require.Len(t, results, 4)
	failed := Failures(results)
	require.Len(t, failed, 2)
	assert.Equal(t, "expected B, got b", failed[0].Describe())
	assert.Equal(t, `expected error containing "boom", got d`, failed[1].Describe())
}
