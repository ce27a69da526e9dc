package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/verdict/internal/module"
	"github.com/mrz1836/verdict/internal/result"
)

func TestConfig_DefaultModules(t *testing.T) {
	t.Parallel()

	t.Run("root module when none configured", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []module.Module{module.Root()}, DefaultConfig().DefaultModules())
	})

	t.Run("configured modules keep their order", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Modules = []ModuleConfig{
			{Path: "./"},
			{Path: "pkg/trace/", TestTargets: []string{"./api/..."}, SkipLint: true},
			{Path: "test/e2e", SkipTest: true},
		}

		mods := cfg.DefaultModules()

		assert.Len(t, mods, 3)
		assert.Equal(t, ".", mods[0].Path)
		assert.Equal(t, "pkg/trace", mods[1].Path)
		assert.Equal(t, []string{"./api/..."}, mods[1].TestTargets)
		assert.Equal(t, []string{module.DefaultTarget}, mods[1].LintTargets)
		assert.True(t, mods[1].ShouldTest)
		assert.False(t, mods[1].ShouldLint)
		assert.False(t, mods[2].ShouldTest)
		assert.True(t, mods[2].ShouldLint)
	})
}

func TestConfig_BuildTags(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Tags = map[string][]string{"iot": {"jmx", "otlp"}}

	assert.Equal(t, []string{"jmx", "otlp"}, cfg.BuildTags(result.FlavorIoT))
	assert.Nil(t, cfg.BuildTags(result.FlavorBase))
}
