package manifest_test

import (
	"os"
	"testing"

	"github.com/nais/boshprobe/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	data, err := os.ReadFile("testdata/templated.yml")
	require.NoError(t, err)

	vars, err := manifest.VariablesFromFile("testdata/vars.yml")
	require.NoError(t, err)

	rendered, err := manifest.Render(data, vars)
	require.NoError(t, err)

	m, err := manifest.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, "redis-dev", m.Name())

	instances, err := m.Get("instance_groups.0.instances")
	assert.NoError(t, err)
	assert.Equal(t, 3, instances)
}

func TestRenderWithoutVariables(t *testing.T) {
	data := []byte("name: {{deployment}}\n")
	rendered, err := manifest.Render(data, manifest.Variables{})
	assert.NoError(t, err)
	assert.Equal(t, data, rendered)
}

func TestVariablesFromSlice(t *testing.T) {
	vars := manifest.VariablesFromSlice([]string{"deployment=redis", "tls", "url=http://a=b"})
	assert.Equal(t, manifest.Variables{
		"deployment": "redis",
		"tls":        true,
		"url":        "http://a=b",
	}, vars)
}

func TestVariablesMerge(t *testing.T) {
	vars := manifest.Variables{"deployment": "redis", "instances": float64(1)}
	replaced := make([]string, 0)
	vars.Merge(manifest.Variables{"instances": "2"}, func(key string, oldval, newval any) {
		replaced = append(replaced, key)
	})
	assert.Equal(t, []string{"instances"}, replaced)
	assert.Equal(t, "2", vars["instances"])
}
