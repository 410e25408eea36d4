package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		side           string
		regions        string
		matched        bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "hippocampus any side",
			args:        []string{"hippocampus"},
			wantContain: []string{"LA1-LA2", "Left CA1", "Matched: 3 of 8 pairs (hippocampus, side any)"},
		},
		{
			name:           "left mtl matched only",
			args:           []string{"mtl"},
			side:           "left",
			matched:        true,
			wantContain:    []string{"LA1-LA2", "LA2-LA3", "LB1-LB2", "Matched: 3 of 8"},
			wantNotContain: []string{"RD1-RD2", "RG1-RG2"},
		},
		{
			name:        "right hippocampus",
			args:        []string{"hippocampus"},
			side:        "right",
			wantContain: []string{"Matched: 1 of 8"},
		},
		{
			name:        "explicit regions",
			regions:     "dlpfc, superiortemporal",
			wantContain: []string{"Matched: 2 of 8 pairs (dlpfc,superiortemporal, side any)"},
		},
		{
			name:        "explicit regions left",
			regions:     "dlpfc,superiortemporal",
			side:        "left",
			wantContain: []string{"Matched: 2 of 8"},
		},
		{
			name:    "unknown group",
			args:    []string{"thalamus"},
			wantErr: true,
		},
		{
			name:    "bad side",
			args:    []string{"mtl"},
			side:    "up",
			wantErr: true,
		},
		{
			name:    "group and regions",
			args:    []string{"mtl"},
			regions: "CA1",
			wantErr: true,
		},
		{
			name:    "neither group nor regions",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			if tt.side != "" {
				maskSide = tt.side
			}
			maskRegions = tt.regions
			maskOnly = tt.matched

			args := append([]string{testDataPath(t, "pairs.tsv")}, tt.args...)
			output, err := captureOutput(t, func() error {
				return runMask(args)
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runMask() error = %v, wantErr %v", err, tt.wantErr)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestMaskCommand_JSON(t *testing.T) {
	resetGlobals(t)
	jsonOut = true
	maskSide = "left"

	output, err := captureOutput(t, func() error {
		return runMask([]string{testDataPath(t, "pairs.tsv"), "hippocampus"})
	})
	require.NoError(t, err)

	result := assertJSON(t, output)
	require.Equal(t, "hippocampus", result["query"])
	require.Equal(t, "left", result["side"])
	require.EqualValues(t, 2, result["matched"])
	require.EqualValues(t, 8, result["total"])
	require.Len(t, result["pairs"], 8)
}
