package region

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/locatorkit/pkg/types"
)

func TestResolve_DefaultPriority(t *testing.T) {
	tests := []struct {
		label string
		want  GroupID
	}{
		{"CA1", Hippocampus},
		{"left CA1", Hippocampus},
		{"unknown_region", NoMatch},
		{"", NoMatch},
		{"amygdala", MTL},
		{"Right Entorhinal", MTL},
		{"stg", LTC},
		{"fusiform", Temporal},
		{"precentral gyrus", PFC},
		{"isthmuscingulate", Cingulate},
		{"left precuneus", Parietal},
		{"insula", Other},
		{"Lateral Ventricle", Other},
	}
	labels := make([]string, len(tests))
	for i, tt := range tests {
		labels[i] = tt.label
	}

	got, err := Resolve(labels, Default(), DefaultPriority)
	require.NoError(t, err)
	require.Len(t, got, len(tests))
	for i, tt := range tests {
		require.Equal(t, tt.want, got[i], "label %q", tt.label)
	}
}

func TestResolve_MostSpecificWins(t *testing.T) {
	got, err := Resolve([]string{"CA1", "unknown_region"}, Default(), DefaultPriority)
	require.NoError(t, err)
	require.Equal(t, []GroupID{Hippocampus, NoMatch}, got)
}

func TestResolve_OtherIsFallback(t *testing.T) {
	got, err := Resolve([]string{"CA1", "insula", "stg"}, Default(), []GroupID{MTL})
	require.NoError(t, err)
	require.Equal(t, []GroupID{MTL, Other, NoMatch}, got)
}

func TestResolve_CatalogWithoutOther(t *testing.T) {
	c, err := NewCatalog(GroupDef{ID: "deep", Names: []string{"CA1"}})
	require.NoError(t, err)
	got, err := Resolve([]string{"CA1", "insula"}, c, []GroupID{"deep"})
	require.NoError(t, err)
	require.Equal(t, []GroupID{"deep", NoMatch}, got)
}

func TestResolve_EmptyLabels(t *testing.T) {
	got, err := Resolve(nil, Default(), DefaultPriority)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestResolve_UnknownPriority(t *testing.T) {
	_, err := Resolve([]string{"CA1"}, Default(), []GroupID{"hippocampus", "thalamus"})
	require.ErrorIs(t, err, types.ErrUnknownGroup)
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority(Default(), []string{"mtl_regions", "PFC", "other"})
	require.NoError(t, err)
	require.Equal(t, []GroupID{MTL, PFC, Other}, got)

	_, err = ParsePriority(Default(), []string{"mtl", "mtl_regions"})
	require.ErrorIs(t, err, types.ErrFormat)

	_, err = ParsePriority(Default(), []string{"thalamus"})
	require.ErrorIs(t, err, types.ErrUnknownGroup)
}
