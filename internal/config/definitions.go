package config

import (
	"fmt"
	"strings"

	"github.com/ahrav/stageflow/pkg/stage"
)

// BuildDefinitions resolves every declared stage into a frozen definition and
// registers them all in a fresh registry. Any unresolvable identifier aborts
// the whole build: a declaration document is either fully usable or not at
// all.
func BuildDefinitions(cfg *Config) (*stage.Registry, error) {
	reg := stage.NewRegistry()

	for _, spec := range cfg.Stages {
		def, err := buildDefinition(spec)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("registering stage %s: %w", spec.Name, err)
		}
	}

	return reg, nil
}

func buildDefinition(spec StageSpec) (*stage.Definition, error) {
	b := stage.NewBuilder(spec.Name)

	for _, m := range spec.Members {
		value := m.Value
		if value == "" {
			value = strings.ToLower(m.Name)
		}
		b.Member(m.Name, value)
	}

	if spec.Ordering != nil {
		ids := make([]any, len(*spec.Ordering))
		for i, id := range *spec.Ordering {
			ids[i] = id
		}
		b.Ordering(ids...)
	}

	for from, to := range spec.Flows {
		ids := make([]any, len(to))
		for i, id := range to {
			ids[i] = id
		}
		b.Flow(from, ids...)
	}

	def, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("resolving stage %s: %w", spec.Name, err)
	}
	return def, nil
}
