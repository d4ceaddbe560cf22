package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalRequirementsPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"./reqs"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, "./reqs", cfg.RequirementsPath)
	assert.Equal(t, "templates", cfg.TemplatesPath)
	assert.Equal(t, "out", cfg.OutputPath)
	assert.Equal(t, "standard", cfg.SecurityLevel)
	assert.True(t, cfg.ErrorHandling)
	assert.Empty(t, cfg.DeployURL)
	assert.Equal(t, 10*time.Second, cfg.DeployTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_FlagOverridesPositional(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-requirements", "./from-flag", "./positional"}, out)

	require.NoError(t, err)
	assert.Equal(t, "./from-flag", cfg.RequirementsPath)
}

func TestParse_ShorthandFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-r", "./short"}, out)

	require.NoError(t, err)
	assert.Equal(t, "./short", cfg.RequirementsPath)
}

func TestParse_NoPathPrintsUsageAndExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlagExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bad log format",
			args: []string{"-log-format", "xml", "./reqs"},
			want: "invalid log-format",
		},
		{
			name: "bad log level",
			args: []string{"-log-level", "verbose", "./reqs"},
			want: "invalid log-level",
		},
		{
			name: "bad security level",
			args: []string{"-security-level", "paranoid", "./reqs"},
			want: "invalid security level",
		},
		{
			name: "unknown flag",
			args: []string{"-bogus", "./reqs"},
			want: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, _, err := Parse(tt.args, out)

			require.Error(t, err)
			assert.Nil(t, cfg)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "error should be an *ExitError")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Error(), tt.want)
		})
	}
}

func TestParse_DeployFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{
		"-deploy-url", "http://engine:8080/socket.io",
		"-deploy-namespace", "/workflows",
		"-deploy-timeout", "30s",
		"./reqs",
	}, out)

	require.NoError(t, err)
	assert.Equal(t, "http://engine:8080/socket.io", cfg.DeployURL)
	assert.Equal(t, "/workflows", cfg.DeployNamespace)
	assert.Equal(t, 30*time.Second, cfg.DeployTimeout)
}
