package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/devcheck/internal/config"
)

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)
	return cmd
}

func TestBindFlags_DefaultValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCmd(cfg)

	require.NoError(t, cmd.ParseFlags([]string{}))

	assert.Equal(t, 5*time.Second, cfg.OptionalTimeout)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.ConfigFile)
}

func TestBindFlags_Values(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCmd(cfg)

	err := cmd.ParseFlags([]string{"--optional-timeout", "750ms", "--no-color", "-v", "--config", "x.toml"})
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.OptionalTimeout)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "x.toml", cfg.ConfigFile)
}

func TestBindFlags_RejectsBadDuration(t *testing.T) {
	cmd := newCmd(config.NewDefaultConfig())

	err := cmd.ParseFlags([]string{"--optional-timeout", "soon"})
	assert.Error(t, err)
}

func TestValidateFlags_Defaults(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{}))

	assert.NoError(t, ValidateFlags(cmd, cfg))
}

func TestValidateFlags_NonPositiveTimeout(t *testing.T) {
	for _, value := range []string{"0s", "-1s"} {
		t.Run(value, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newCmd(cfg)
			require.NoError(t, cmd.ParseFlags([]string{"--optional-timeout", value}))

			err := ValidateFlags(cmd, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--optional-timeout must be positive")
		})
	}
}

func TestValidateFlags_ConfigFile(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "devcheck.env")
		require.NoError(t, os.WriteFile(path, []byte("VERBOSE=true\n"), 0644))

		cfg := config.NewDefaultConfig()
		cmd := newCmd(cfg)
		require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

		assert.NoError(t, ValidateFlags(cmd, cfg))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cmd := newCmd(cfg)
		require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing")}))

		err := ValidateFlags(cmd, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--config")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestBuildOverrides_OnlyChangedFlags(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{}))

	assert.Empty(t, BuildOverrides(cmd, cfg))
}

func TestBuildOverrides_ChangedFlags(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--optional-timeout", "2s", "--verbose=false", "--no-color"}))

	assert.Equal(t, map[string]string{
		"OPTIONAL_TIMEOUT": "2s",
		"VERBOSE":          "false",
		"NO_COLOR":         "true",
	}, BuildOverrides(cmd, cfg))
}

func TestBuildOverrides_RoundTripsThroughConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devcheck.env")
	require.NoError(t, os.WriteFile(path, []byte("OPTIONAL_TIMEOUT=30\nVERBOSE=true\n"), 0644))

	cfg := config.NewDefaultConfig()
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--optional-timeout", "1500ms"}))

	final, err := config.LoadWithPrecedence(cfg.ConfigFile, BuildOverrides(cmd, cfg))
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, final.OptionalTimeout, "flag beats file")
	assert.True(t, final.Verbose, "file beats default")
}
