package dirbuild

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

//go:embed seeds.yaml
var seedsYAML []byte

// Seed is boilerplate bound to a well-known file name. Exec marks helper
// scripts that must be written executable.
type Seed struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
	Exec bool   `yaml:"exec"`
}

// Seeds returns the built-in boilerplate table.
func Seeds() ([]Seed, error) {
	var doc struct {
		Seeds []Seed `yaml:"seeds"`
	}
	if err := yaml.Unmarshal(seedsYAML, &doc); err != nil {
		return nil, fmt.Errorf("could not decode seeds: %w", err)
	}
	return doc.Seeds, nil
}

func seedTable() (map[string]Seed, error) {
	seeds, err := Seeds()
	if err != nil {
		return nil, err
	}
	m := make(map[string]Seed, len(seeds))
	for _, s := range seeds {
		m[s.Name] = s
	}
	return m, nil
}
