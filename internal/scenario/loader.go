// Package scenario loads the inputs shared by the heaviside commands.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns Default when path is empty, otherwise the parsed file.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFromFile(path)
}

func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over Default, so omitted keys keep their default value.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func validate(s *Scenario) error {
	if err := s.Sweep.Validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if err := s.Plot.Style.Validate(); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if _, _, err := s.Temperatures.Units(); err != nil {
		return fmt.Errorf("temperatures: %w", err)
	}
	if len(s.Temperatures.Values) == 0 {
		return fmt.Errorf("temperatures: no values")
	}
	if s.Name == "" {
		s.Name = "unnamed"
	}
	return nil
}
