package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadLayout deserializes a layout YAML document and validates it.
// Unknown top-level keys are ignored for forward compatibility.
func LoadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: invalid yaml: %w", err)
	}
	if err := Validate(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadManifest deserializes a manifest YAML document and validates every
// job entry.
func LoadManifest(r io.Reader) ([]Job, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: invalid yaml: %w", err)
	}
	for _, j := range m.Jobs {
		if err := ValidateJob(j); err != nil {
			return nil, err
		}
	}
	return m.Jobs, nil
}
