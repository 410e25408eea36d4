package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllCommand(t *testing.T) {
	tests := []struct {
		name         string
		catalog      string
		priority     []string
		localization string
		wantErr      bool
		wantContain  []string
	}{
		{
			name: "default priority",
			wantContain: []string{
				"LA2-LA3", "mtl",
				"  hippocampus  3", "  mtl          1", "  ltc          1", "  pfc          1", "  -            2",
				"Total: 8 pairs",
			},
		},
		{
			name:         "with localization",
			localization: "localization.json",
			wantContain:  []string{"Right Insula", "  other        1", "  -            1"},
		},
		{
			name:        "custom priority",
			priority:    []string{"mtl", "ltc"},
			wantContain: []string{"  mtl          4", "  ltc          1"},
		},
		{
			name:        "custom catalog",
			catalog:     "catalog.yaml",
			wantContain: []string{"  hippocampus  2", "  mtl          1", "  -            5"},
		},
		{
			name:     "unknown priority group",
			priority: []string{"thalamus"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			settings.Priority = tt.priority
			if tt.catalog != "" {
				settings.CatalogPath = testDataPath(t, tt.catalog)
			}
			if tt.localization != "" {
				settings.LocalizationPath = testDataPath(t, tt.localization)
			}

			output, err := captureOutput(t, func() error {
				return runAll([]string{testDataPath(t, "pairs.tsv")})
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestAllCommand_JSON(t *testing.T) {
	resetGlobals(t)
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runAll([]string{testDataPath(t, "pairs.tsv")})
	})
	require.NoError(t, err)

	result := assertJSON(t, output)
	rows := result["pairs"].([]interface{})
	require.Len(t, rows, 8)
	want := []string{"hippocampus", "mtl", "hippocampus", "", "hippocampus", "ltc", "pfc", ""}
	for i, row := range rows {
		require.Equal(t, want[i], row.(map[string]interface{})["group"], "pair %d", i)
	}
	counts := result["counts"].(map[string]interface{})
	require.EqualValues(t, 3, counts["hippocampus"])
	require.EqualValues(t, 2, counts["-"])
}
