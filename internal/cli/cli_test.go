package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		expectExit   bool
		expectErr    string
		expectConfig bool
	}{
		{
			name:         "fixtures and out flags",
			args:         []string{"-fixtures", "frame/fixtures", "-out", "target/fixtures"},
			expectConfig: true,
		},
		{
			name:         "shorthand flags",
			args:         []string{"-f", "frame/fixtures", "-o", "target/fixtures"},
			expectConfig: true,
		},
		{
			name:         "positional fixtures path",
			args:         []string{"-out", "target/fixtures", "frame/fixtures"},
			expectConfig: true,
		},
		{
			name:       "no arguments prints usage",
			args:       nil,
			expectExit: true,
		},
		{
			name:       "help flag",
			args:       []string{"-h"},
			expectExit: true,
		},
		{
			name:      "missing output dir",
			args:      []string{"-fixtures", "frame/fixtures"},
			expectErr: "an output directory is required",
		},
		{
			name:      "invalid log format",
			args:      []string{"-fixtures", "x", "-out", "y", "-log-format", "yaml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "invalid log level",
			args:      []string{"-fixtures", "x", "-out", "y", "-log-level", "verbose"},
			expectErr: "invalid log-level",
		},
		{
			name:      "unknown flag",
			args:      []string{"--definitely-not-a-flag"},
			expectErr: "flag provided but not defined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			config, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)

			if tc.expectConfig {
				require.NotNil(t, config)
				assert.Equal(t, "frame/fixtures", config.FixturesDir)
				assert.Equal(t, "target/fixtures", config.OutputDir)
				assert.Equal(t, "text", config.LogFormat)
				assert.Equal(t, "info", config.LogLevel)
			} else {
				assert.Nil(t, config)
			}
		})
	}
}

func TestParse_UsageText(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "FIXTURES_DIR")
}
