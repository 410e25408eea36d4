package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locatorkit/region"
)

func init() {
	rootCmd.AddCommand(newAllCmd())
}

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all <pairs>",
		Short: "Assign every pair its most specific region group",
		Long: `The all command resolves each pair to the first region group, in
priority order, whose names contain the pair's label. The default order is
hippocampus, mtl, ltc, temporal, pfc, cingulate, parietal, other.

Example:
  locatorctl all pairs.tsv
  locatorctl all pairs.tsv --priority mtl,ltc,pfc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(args)
		},
	}
	return cmd
}

type resolvedRow struct {
	Index int    `json:"index"`
	Pair  string `json:"pair"`
	Label string `json:"label"`
	Group string `json:"group"`
}

func runAll(args []string) error {
	loc, r, err := openSession(args[0])
	if err != nil {
		return err
	}

	groups, err := loc.All()
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}
	labels, err := r.Labels()
	if err != nil {
		return err
	}
	pairLabels := r.Table.PairLabels()

	rows := make([]resolvedRow, len(groups))
	counts := make(map[string]int)
	for i, g := range groups {
		rows[i] = resolvedRow{Index: i, Pair: pairLabels[i], Label: labels[i], Group: string(g)}
		counts[groupName(g)]++
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"pairs":  rows,
			"counts": counts,
			"total":  len(rows),
		})
	}

	for _, row := range rows {
		printInfo("%4d  %-12s %-30s %s\n", row.Index, row.Pair, displayLabel(row.Label), groupName(region.GroupID(row.Group)))
	}
	printInfo("\n")
	for _, id := range append(loc.Catalog().IDs(), region.NoMatch) {
		if n := counts[groupName(id)]; n > 0 {
			printInfo("  %-12s %d\n", groupName(id), n)
		}
	}
	printInfo("Total: %d pairs\n", len(rows))
	return nil
}

func groupName(id region.GroupID) string {
	if id == region.NoMatch {
		return "-"
	}
	return string(id)
}
