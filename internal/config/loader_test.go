package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable homedir caching to allow tests to change HOME
	homedir.DisableCache = true
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()

	assert.NotNil(t, loader)
	assert.NotNil(t, loader.viper)
	assert.Equal(t, 820, loader.GetInt("mount-mobile-max"))
}

func TestLoader_SetDefault(t *testing.T) {
	loader := NewLoader()

	loader.SetDefault("test-key", "default-value")
	assert.Equal(t, "default-value", loader.GetString("test-key"))
}

func TestLoader_GetBool(t *testing.T) {
	loader := NewLoader()

	t.Run("returns true", func(t *testing.T) {
		loader.SetDefault("bool-true", true)
		assert.True(t, loader.GetBool("bool-true"))
	})

	t.Run("returns false", func(t *testing.T) {
		loader.SetDefault("bool-false", false)
		assert.False(t, loader.GetBool("bool-false"))
	})
}

func TestLoader_IsSet(t *testing.T) {
	loader := NewLoader()

	t.Run("returns true for set key", func(t *testing.T) {
		loader.SetDefault("existing-key", "value")
		assert.True(t, loader.IsSet("existing-key"))
	})

	t.Run("returns false for unset key", func(t *testing.T) {
		assert.False(t, loader.IsSet("nonexistent-key"))
	})
}

func TestLoader_BindFlag(t *testing.T) {
	loader := NewLoader()

	cmd := &cobra.Command{}
	cmd.Flags().Bool("dark", false, "dark theme")
	require.NoError(t, cmd.Flags().Set("dark", "true"))

	flag := cmd.Flags().Lookup("dark")
	require.NotNil(t, flag)

	require.NoError(t, loader.BindFlag("dark", flag))
	assert.True(t, loader.Config().Dark)
}

func TestLoader_Config(t *testing.T) {
	loader := NewLoader()

	assert.Equal(t, *DefaultConfig(), *loader.Config())

	loader.viper.Set("github-user", "octocat")
	loader.viper.Set("scroll-threshold", 120)

	cfg := loader.Config()
	assert.Equal(t, "octocat", cfg.GitHubUser)
	assert.Equal(t, 120, cfg.ScrollThreshold)
}

func TestLoader_InjectToCommand(t *testing.T) {
	t.Run("injects config value to unchanged flag", func(t *testing.T) {
		loader := NewLoader()
		loader.SetDefault("inject-flag", "config-value")

		cmd := &cobra.Command{}
		cmd.Flags().String("inject-flag", "default", "test flag")

		loader.InjectToCommand(cmd)

		result, _ := cmd.Flags().GetString("inject-flag")
		assert.Equal(t, "config-value", result)
	})

	t.Run("does not override changed flag", func(t *testing.T) {
		loader := NewLoader()
		loader.SetDefault("override-flag", "config-value")

		cmd := &cobra.Command{}
		cmd.Flags().String("override-flag", "default", "test flag")
		require.NoError(t, cmd.Flags().Set("override-flag", "cli-value"))

		loader.InjectToCommand(cmd)

		result, _ := cmd.Flags().GetString("override-flag")
		assert.Equal(t, "cli-value", result)
	})
}

func TestLoader_Initialize(t *testing.T) {
	t.Run("loads config from temp directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)

		configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)
		content := `verbose: true
owner: Test Owner
resize-mobile-max: 820
`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

		loader := NewLoader()
		require.NoError(t, loader.Initialize())

		cfg := loader.Config()
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "Test Owner", cfg.Owner)
		assert.Equal(t, 820, cfg.ResizeMobileMax)
		assert.Equal(t, 820, cfg.MountMobileMax)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)
		t.Setenv("FOLIO_GITHUB_USER", "from-env")

		loader := NewLoader()
		require.NoError(t, loader.Initialize())

		assert.Equal(t, "from-env", loader.Config().GitHubUser)
	})

	t.Run("creates default config when missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)

		configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)
		_, err := os.Stat(configPath)
		require.True(t, os.IsNotExist(err))

		loader := NewLoader()
		require.NoError(t, loader.Initialize())

		_, err = os.Stat(configPath)
		assert.NoError(t, err)
	})
}

func TestLoader_Initialize_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configPath := filepath.Join(tmpDir, DefaultConfigFileName+"."+DefaultConfigFileType)
	require.NoError(t, os.WriteFile(configPath, []byte("{ invalid yaml\n"), 0600))

	t.Setenv("FOLIO_GITHUB_USER", "from-env")

	loader := NewLoader()
	assert.Error(t, loader.Initialize())
	assert.Equal(t, "from-env", loader.Config().GitHubUser)
}

func TestLoader_Initialize_UnwritableHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "missing", "home"))
	t.Setenv("FOLIO_GITHUB_USER", "from-env")
	t.Setenv("FOLIO_SCROLL_THRESHOLD", "40")

	loader := NewLoader()
	require.Error(t, loader.Initialize())

	cfg := loader.Config()
	assert.Equal(t, "from-env", cfg.GitHubUser)
	assert.Equal(t, 40, cfg.ScrollThreshold)
}
