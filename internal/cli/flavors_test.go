package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlavorsCmd_Text(t *testing.T) {
	isolate(t)
	writeProjectConfig(t, "flavor: iot\ntags:\n  iot: [zlib, iot]\n")

	out, err := runCLI(t, nil, "flavors")

	require.NoError(t, err)
	assert.Contains(t, out, "FLAVOR")
	assert.Contains(t, out, "iot (default)")
	assert.Contains(t, out, "zlib,iot")
	for _, name := range []string{"base", "heroku", "dogstatsd", "fips"} {
		assert.Contains(t, out, name)
	}
}

func TestFlavorsCmd_JSON(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, nil, "flavors", "-o", "json")

	require.NoError(t, err)
	var infos []flavorInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 5)
	assert.Equal(t, "base", infos[0].Name)
	assert.Empty(t, infos[0].Tags)
}

func TestJoinTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", joinTags(nil))
	assert.Equal(t, "a", joinTags([]string{"a"}))
	assert.Equal(t, "a,b,c", joinTags([]string{"a", "b", "c"}))
}
