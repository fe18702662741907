package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGPaths_WithEnvironmentVariables(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping XDG-specific tests on Windows - Windows uses AppData paths")
	}
	// Save original environment
	originalEnv := map[string]string{
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"XDG_DATA_HOME":   os.Getenv("XDG_DATA_HOME"),
		"XDG_CACHE_HOME":  os.Getenv("XDG_CACHE_HOME"),
		"XDG_CONFIG_DIRS": os.Getenv("XDG_CONFIG_DIRS"),
		"XDG_DATA_DIRS":   os.Getenv("XDG_DATA_DIRS"),
		"HOME":            os.Getenv("HOME"),
	}

	// Restore environment after test
	defer func() {
		for key, value := range originalEnv {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	// Set test environment variables
	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	os.Setenv("XDG_DATA_HOME", "/custom/data")
	os.Setenv("XDG_CACHE_HOME", "/custom/cache")
	os.Setenv("XDG_CONFIG_DIRS", "/etc/xdg:/usr/local/etc")
	os.Setenv("XDG_DATA_DIRS", "/usr/share:/usr/local/share")
	os.Setenv("HOME", "/home/testuser")

	paths := GetXDGPaths("testapp")

	assert.Equal(t, "/custom/config/testapp", paths.ConfigHome)
	assert.Equal(t, "/custom/data/testapp", paths.DataHome)
	assert.Equal(t, "/custom/cache/testapp", paths.CacheHome)
	assert.Equal(t, []string{"/etc/xdg/testapp", "/usr/local/etc/testapp"}, paths.ConfigDirs)
	assert.Equal(t, []string{"/usr/share/testapp", "/usr/local/share/testapp"}, paths.DataDirs)
}

func TestGetXDGPaths_WithDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping XDG-specific tests on Windows - Windows uses AppData paths")
	}
	// Save original environment
	originalEnv := map[string]string{
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"XDG_DATA_HOME":   os.Getenv("XDG_DATA_HOME"),
		"XDG_CACHE_HOME":  os.Getenv("XDG_CACHE_HOME"),
		"XDG_CONFIG_DIRS": os.Getenv("XDG_CONFIG_DIRS"),
		"XDG_DATA_DIRS":   os.Getenv("XDG_DATA_DIRS"),
		"HOME":            os.Getenv("HOME"),
	}

	// Restore environment after test
	defer func() {
		for key, value := range originalEnv {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	// Clear XDG environment variables to use defaults
	os.Unsetenv("XDG_CONFIG_HOME")
	os.Unsetenv("XDG_DATA_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CONFIG_DIRS")
	os.Unsetenv("XDG_DATA_DIRS")
	os.Setenv("HOME", "/home/testuser")

	paths := GetXDGPaths("testapp")

	assert.Equal(t, "/home/testuser/.config/testapp", paths.ConfigHome)
	assert.Equal(t, "/home/testuser/.local/share/testapp", paths.DataHome)
	assert.Equal(t, "/home/testuser/.cache/testapp", paths.CacheHome)
	assert.Equal(t, []string{"/etc/xdg/testapp"}, paths.ConfigDirs)
	assert.Equal(t, []string{"/usr/local/share/testapp", "/usr/share/testapp"}, paths.DataDirs)
}

func TestGetXDGPaths_NoHomeDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping XDG-specific tests on Windows - Windows uses AppData paths")
	}
	// Save original environment
	originalHome := os.Getenv("HOME")
	defer func() {
		if originalHome == "" {
			os.Unsetenv("HOME")
		} else {
			os.Setenv("HOME", originalHome)
		}
	}()

	// Clear HOME environment variable
	os.Unsetenv("HOME")
	os.Unsetenv("XDG_CONFIG_HOME")
	os.Unsetenv("XDG_DATA_HOME")
	os.Unsetenv("XDG_CACHE_HOME")

	paths := GetXDGPaths("testapp")

	// Should handle missing home directory gracefully
	assert.Equal(t, "", paths.ConfigHome)
	assert.Equal(t, "", paths.DataHome)
	assert.Equal(t, "", paths.CacheHome)
}

func TestGetXDGPaths_EmptyAppName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping XDG-specific tests on Windows - Windows uses AppData paths")
	}
	// Save original environment
	originalEnv := map[string]string{
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"XDG_DATA_HOME":   os.Getenv("XDG_DATA_HOME"),
		"XDG_CACHE_HOME":  os.Getenv("XDG_CACHE_HOME"),
		"XDG_CONFIG_DIRS": os.Getenv("XDG_CONFIG_DIRS"),
		"XDG_DATA_DIRS":   os.Getenv("XDG_DATA_DIRS"),
		"HOME":            os.Getenv("HOME"),
	}

	// Restore environment after test
	defer func() {
		for key, value := range originalEnv {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	// Clear XDG environment variables to use defaults
	os.Unsetenv("XDG_CONFIG_HOME")
	os.Unsetenv("XDG_DATA_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CONFIG_DIRS")
	os.Unsetenv("XDG_DATA_DIRS")
	os.Setenv("HOME", "/home/testuser")

	paths := GetXDGPaths("")

	assert.Equal(t, "/home/testuser/.config", paths.ConfigHome)
	assert.Equal(t, "/home/testuser/.local/share", paths.DataHome)
	assert.Equal(t, "/home/testuser/.cache", paths.CacheHome)
	assert.Equal(t, []string{"/etc/xdg"}, paths.ConfigDirs)
	assert.Equal(t, []string{"/usr/local/share", "/usr/share"}, paths.DataDirs)
}

func TestGetXDGPaths_ComplexAppName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping XDG-specific tests on Windows - Windows uses AppData paths")
	}
	// Save original environment
	originalHome := os.Getenv("HOME")
	defer func() {
		if originalHome == "" {
			os.Unsetenv("HOME")
		} else {
			os.Setenv("HOME", originalHome)
		}
	}()

	os.Setenv("HOME", "/home/testuser")

	paths := GetXDGPaths("my-complex-app-name_v2")

	assert.Equal(t, "/home/testuser/.config/my-complex-app-name_v2", paths.ConfigHome)
	assert.Equal(t, "/home/testuser/.local/share/my-complex-app-name_v2", paths.DataHome)
	assert.Equal(t, "/home/testuser/.cache/my-complex-app-name_v2", paths.CacheHome)
}

func TestGetXDGPaths_WindowsStyle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping XDG Windows-style test on Windows - Windows uses native AppData paths")
	}

	// Save original environment
	originalEnv := map[string]string{
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
		"HOME":            os.Getenv("HOME"),
	}
	defer func() {
		for key, value := range originalEnv {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	// Test with Windows-style paths (using backslashes)
	os.Setenv("XDG_CONFIG_HOME", "C:\\Users\\TestUser\\Config")
	os.Setenv("HOME", "C:\\Users\\TestUser")

	paths := GetXDGPaths("testapp")

	// On Unix systems, filepath.Join will use forward slashes even with backslash input
	expected := filepath.Join("C:\\Users\\TestUser\\Config", "testapp")
	assert.Equal(t, expected, paths.ConfigHome)
}

func TestGetConfigSearchPaths_OrderAndContents(t *testing.T) {
	paths := &XDGPaths{
		ConfigHome: "/home/testuser/.config/testapp",
		ConfigDirs: []string{"/etc/xdg/testapp"},
	}

	search := paths.GetConfigSearchPaths()
	require.Len(t, search, 3)
	assert.Equal(t, paths.ConfigHome, search[1])
	assert.Equal(t, "/etc/xdg/testapp", search[2])
}

func TestFindConfigFile_InUserConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	userConfigDir := filepath.Join(tempDir, "testapp")
	require.NoError(t, os.MkdirAll(userConfigDir, 0755))

	configFile := filepath.Join(userConfigDir, ".rulemd.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("theme: solarized\n"), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(originalDir)

	result, err := FindConfigFile("testapp")
	require.NoError(t, err)
	assert.Equal(t, configFile, result)
}

func TestFindConfigFile_NotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(originalDir)

	result, err := FindConfigFile("testapp-does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestFindAllConfigFiles_PrefersProjectOverUser(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdgconfig"))

	userConfigDir := filepath.Join(tempDir, "xdgconfig", "testapp")
	require.NoError(t, os.MkdirAll(userConfigDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userConfigDir, ".rulemd.yaml"), []byte("theme: default\n"), 0644))

	projectDir := filepath.Join(tempDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".rulemd.yaml"), []byte("theme: plain\n"), 0644))

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(projectDir))
	defer os.Chdir(originalDir)

	found, err := FindAllConfigFiles("testapp")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, ConfigTypeProject, found[0].Type)
}

func TestEnsureConfigDir_CreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	dir, err := EnsureConfigDir("testapp")
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestGetDefaultConfigPath_UnderXDGConfigHome(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	path, err := GetDefaultConfigPath("testapp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "testapp", ".rulemd.yaml"), path)
}

// Test edge cases and error conditions
func TestXDGPaths_EdgeCases(t *testing.T) {
	t.Run("very_long_paths", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("Skipping XDG-specific path tests on Windows - Windows uses AppData paths")
		}
		longPath := strings.Repeat("a", 1000)

		// Save original environment
		originalHome := os.Getenv("HOME")
		defer func() {
			if originalHome == "" {
				os.Unsetenv("HOME")
			} else {
				os.Setenv("HOME", originalHome)
			}
		}()

		os.Setenv("HOME", "/home/"+longPath)

		paths := GetXDGPaths("testapp")
		assert.Contains(t, paths.ConfigHome, longPath)
	})

	t.Run("special_characters_in_app_name", func(t *testing.T) {
		specialChars := "app-name_with.special~chars@#$%"

		// Save original environment
		originalHome := os.Getenv("HOME")
		defer func() {
			if originalHome == "" {
				os.Unsetenv("HOME")
			} else {
				os.Setenv("HOME", originalHome)
			}
		}()

		os.Setenv("HOME", "/home/testuser")

		paths := GetXDGPaths(specialChars)
		assert.Contains(t, paths.ConfigHome, specialChars)
	})
}

// Benchmark tests
func BenchmarkGetXDGPaths(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GetXDGPaths("testapp")
	}
}

func BenchmarkFindConfigFile(b *testing.B) {
	tempDir := b.TempDir()
	b.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "testapp")
	require.NoError(b, os.MkdirAll(configDir, 0755))
	require.NoError(b, os.WriteFile(filepath.Join(configDir, ".rulemd.yaml"), []byte("theme: default\n"), 0644))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindConfigFile("testapp")
	}
}
