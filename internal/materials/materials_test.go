package materials_test

import (
	"testing"

	"github.com/couchcryptid/pipe-headloss/internal/materials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CatalogLoads(t *testing.T) {
	all := materials.All()
	require.NotEmpty(t, all)

	for _, m := range all {
		assert.NotEmpty(t, m.Name)
		assert.GreaterOrEqual(t, m.RoughnessMm, 0.0)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := materials.All()
	require.NotEmpty(t, all)
	original := all[0].Name

	all[0].Name = "scribbled"

	fresh := materials.All()
	assert.Equal(t, original, fresh[0].Name)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantFound   bool
		wantRoughMm float64
	}{
		{name: "exact", query: "pvc", wantFound: true, wantRoughMm: 0.0015},
		{name: "uppercase", query: "PVC", wantFound: true, wantRoughMm: 0.0015},
		{name: "mixed case", query: "Cast-Iron", wantFound: true, wantRoughMm: 0.26},
		{name: "galvanized", query: "galvanized-steel", wantFound: true, wantRoughMm: 0.15},
		{name: "unknown", query: "adamantium", wantFound: false},
		{name: "empty", query: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, found := materials.Lookup(tt.query)
			require.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, tt.wantRoughMm, m.RoughnessMm)
			}
		})
	}
}
