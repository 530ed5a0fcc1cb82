package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the conventional project file name.
const DefaultFilename = "bridgegen.yaml"

// Project is the parsed bridgegen.yaml project file.
type Project struct {
	// Version of the project file format.
	Version string `yaml:"version,omitempty"`
	// AndroidRoot is the directory scanned for Kotlin sources.
	AndroidRoot string `yaml:"android_root"`
	// IOSRoot is the directory scanned for Swift sources.
	IOSRoot string `yaml:"ios_root"`
	// Output is the path the generated Dart file is written to.
	Output string `yaml:"output"`
	// Channel is the method channel name embedded in generated code.
	Channel string `yaml:"channel,omitempty"`
	// EventPrefix is prepended to event channel identifiers.
	EventPrefix string `yaml:"event_prefix,omitempty"`
}

// LoadFile loads and parses a project file from the given path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Project.
func Parse(data []byte) (*Project, error) {
	var p Project

	err := yaml.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Project) {
	if p.Version == "" {
		p.Version = "1"
	}

	if p.Channel == "" {
		p.Channel = "bridgegen"
	}

	if p.EventPrefix == "" {
		p.EventPrefix = p.Channel + "/events/"
	}

	if p.Output == "" {
		p.Output = "lib/bridge.g.dart"
	}
}

// Validate checks that the project names both source roots.
func (p *Project) Validate() error {
	if p.AndroidRoot == "" {
		return errors.New("project file missing android_root")
	}

	if p.IOSRoot == "" {
		return errors.New("project file missing ios_root")
	}

	return nil
}

// Marshal serializes a Project to YAML.
func Marshal(p *Project) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Project to the given path.
func WriteFile(p *Project, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write project file %s: %w", path, err)
	}

	return nil
}
