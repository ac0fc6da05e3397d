package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AlexVanMeegen/nest-simulator/sim/gid"
)

// builtinModels are the node models available in every kernel. The ModelID
// of a model is its registration index, so the order here is part of the
// deterministic kernel state.
var builtinModels = []string{
	"iaf_psc_alpha",
	"iaf_psc_exp",
	"iaf_psc_delta",
	"parrot_neuron",
	"poisson_generator",
	"dc_generator",
	"spike_detector",
	"voltmeter",
	"weight_recorder",
}

// ModelRegistry maps model names to ModelIDs and back. IDs are assigned in
// registration order and never reused; a registry only grows.
type ModelRegistry struct {
	names []string
	ids   map[string]gid.ModelID
}

// NewModelRegistry returns a registry pre-populated with the built-in
// models.
func NewModelRegistry() *ModelRegistry {
	r := &ModelRegistry{ids: make(map[string]gid.ModelID)}
	for _, name := range builtinModels {
		r.mustRegister(name)
	}
	return r
}

// Register adds a model under the next free ModelID. Registering an already
// known name is an error; model definitions are never replaced.
func (r *ModelRegistry) Register(name string) (gid.ModelID, error) {
	if name == "" {
		return 0, fmt.Errorf("registering model: empty name")
	}
	if id, ok := r.ids[name]; ok {
		return id, fmt.Errorf("registering model: %q already registered", name)
	}
	return r.mustRegister(name), nil
}

func (r *ModelRegistry) mustRegister(name string) gid.ModelID {
	id := gid.ModelID(len(r.names))
	r.names = append(r.names, name)
	r.ids[name] = id
	return id
}

// ID returns the ModelID registered for name.
func (r *ModelRegistry) ID(name string) (gid.ModelID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the model name behind id.
func (r *ModelRegistry) Name(id gid.ModelID) (string, bool) {
	if id < 0 || int(id) >= len(r.names) {
		return "", false
	}
	return r.names[int(id)], true
}

// Names returns all registered model names in ModelID order. The returned
// slice is a copy.
func (r *ModelRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// modelsFile is the YAML shape of a custom model list.
type modelsFile struct {
	Models []string `yaml:"models"`
}

// LoadFile registers additional models from a YAML file of the form
//
//	models:
//	  - my_neuron
//	  - my_synapse_probe
//
// Names already present in the registry are rejected.
func (r *ModelRegistry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading models file: %w", err)
	}
	var f modelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing models file: %w", err)
	}
	for _, name := range f.Models {
		if _, err := r.Register(name); err != nil {
			return fmt.Errorf("loading models file: %w", err)
		}
	}
	return nil
}
