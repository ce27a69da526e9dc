package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/verdict/internal/constants"
)

func TestGlobalPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".verdict"), dir)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".verdict", "config.yaml"), path)

	logs, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".verdict", constants.LogsDir), logs)
}

func TestProjectConfigPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(".verdict", "config.yaml"), ProjectConfigPath())
}
