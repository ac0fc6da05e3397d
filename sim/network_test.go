package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexVanMeegen/nest-simulator/sim/gid"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNetworkSpec(t *testing.T) {
	path := writeSpec(t, `
populations:
  - label: excitatory
    model: iaf_psc_alpha
    count: 8
  - model: iaf_psc_exp
    count: 2
`)
	spec, err := LoadNetworkSpec(path)
	require.NoError(t, err)
	require.Len(t, spec.Populations, 2)
	assert.Equal(t, "excitatory", spec.Populations[0].Label)
	assert.Equal(t, 8, spec.Populations[0].Count)
	require.NoError(t, spec.Validate())
}

func TestNetworkSpec_ValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		spec NetworkSpec
	}{
		{"no populations", NetworkSpec{}},
		{"missing model", NetworkSpec{Populations: []PopulationSpec{{Count: 5}}}},
		{"zero count", NetworkSpec{Populations: []PopulationSpec{{Model: "iaf_psc_alpha"}}}},
		{"negative count", NetworkSpec{Populations: []PopulationSpec{{Model: "iaf_psc_alpha", Count: -1}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.spec.Validate())
		})
	}
}

func TestNetworkSpec_Build(t *testing.T) {
	spec := &NetworkSpec{
		Models: []string{"my_neuron"},
		Populations: []PopulationSpec{
			{Label: "exc", Model: "iaf_psc_alpha", Count: 8},
			{Model: "my_neuron", Count: 4},
		},
	}
	k := NewKernel(42)
	pops, err := spec.Build(k)
	require.NoError(t, err)
	require.Len(t, pops, 2)

	assert.Equal(t, "exc", pops[0].Label)
	assert.Equal(t, []gid.GID{1, 2, 3, 4, 5, 6, 7, 8}, pops[0].Nodes.GIDs())
	assert.Equal(t, "my_neuron", pops[1].Label, "label defaults to the model name")
	assert.Equal(t, []gid.GID{9, 10, 11, 12}, pops[1].Nodes.GIDs())
	assert.Equal(t, 12, k.NumNodes())
}

func TestNetworkSpec_BuildUnknownModel(t *testing.T) {
	spec := &NetworkSpec{
		Populations: []PopulationSpec{{Model: "missing_model", Count: 3}},
	}
	_, err := spec.Build(NewKernel(42))
	assert.Error(t, err)
}

func TestLoadNetworkSpec_Errors(t *testing.T) {
	_, err := LoadNetworkSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeSpec(t, "populations: {not: a list}")
	_, err = LoadNetworkSpec(bad)
	assert.Error(t, err)
}
