package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rshade/unitwalk/dimension"
)

// catalogFile is the YAML shape of a catalog document:
//
//	conversions:
//	  - coefficient: 60
//	    units:
//	      minute: -1
//	      second: 1
//
// Unit vectors are supplied already in stored sign convention (LHS unit
// negative, RHS units positive).
type catalogFile struct {
	Conversions []equationEntry `yaml:"conversions"`
}

type equationEntry struct {
	Coefficient float64        `yaml:"coefficient"`
	Units       map[string]int `yaml:"units"`
}

// Parse reads a YAML catalog document and returns a validated Catalog.
func Parse(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	equations := make([]Equation, 0, len(file.Conversions))
	for _, entry := range file.Conversions {
		equations = append(equations, Equation{
			Coefficient: entry.Coefficient,
			Exponents:   dimension.Exponents(entry.Units),
		})
	}
	return New(equations...)
}
