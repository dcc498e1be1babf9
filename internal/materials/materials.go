// Package materials ships a small catalog of absolute pipe roughness
// values so callers can name a material instead of supplying a figure.
package materials

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Material is one catalog entry.
type Material struct {
	// Name is the catalog key, matched case-insensitively by Lookup.
	Name string `yaml:"name"`

	// RoughnessMm is the absolute roughness in millimeters, the same
	// unit the calculator accepts before its internal conversion.
	RoughnessMm float64 `yaml:"roughness_mm"`

	// Note records the surface condition the value assumes.
	Note string `yaml:"note,omitempty"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// catalog is parsed once at package load. The data ships with the
// binary, so a malformed file is a build defect and panics.
var catalog = mustParse(catalogYAML)

// All returns every catalog entry in catalog order. The slice is a
// copy; callers may reorder it freely.
func All() []Material {
	return slices.Clone(catalog)
}

// Lookup resolves a material by name, ignoring case.
func Lookup(name string) (Material, bool) {
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Material{}, false
}

func mustParse(data []byte) []Material {
	var doc struct {
		Materials []Material `yaml:"materials"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("materials: parse embedded catalog: %v", err))
	}
	seen := make(map[string]struct{}, len(doc.Materials))
	for _, m := range doc.Materials {
		if m.Name == "" {
			panic("materials: catalog entry with empty name")
		}
		if m.RoughnessMm < 0 {
			panic(fmt.Sprintf("materials: %s has negative roughness", m.Name))
		}
		key := strings.ToLower(m.Name)
		if _, dup := seen[key]; dup {
			panic(fmt.Sprintf("materials: duplicate catalog entry %s", m.Name))
		}
		seen[key] = struct{}{}
	}
	return doc.Materials
}
