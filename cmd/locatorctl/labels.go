package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/locatorkit/region"
)

func init() {
	rootCmd.AddCommand(newLabelsCmd())
}

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels <pairs>",
		Short: "Show the best available label for every pair",
		Long: `The labels command prints the label chosen for each pair from the
table's localization columns, in order stein.region, das.region, the
whole-brain atlas (with --localization, when both contacts agree),
mni.region and ind.region, together with its parsed side and region token.

Example:
  locatorctl labels pairs.tsv
  locatorctl labels pairs.tsv --localization localization.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabels(args)
		},
	}
	return cmd
}

type labelRow struct {
	Index int    `json:"index"`
	Pair  string `json:"pair"`
	Label string `json:"label"`
	Side  string `json:"side"`
	Token string `json:"token"`
}

func runLabels(args []string) error {
	_, r, err := openSession(args[0])
	if err != nil {
		return err
	}
	labels, err := r.Labels()
	if err != nil {
		return err
	}
	pairLabels := r.Table.PairLabels()

	rows := make([]labelRow, len(labels))
	for i, raw := range labels {
		n := region.Normalize(raw)
		rows[i] = labelRow{Index: i, Pair: pairLabels[i], Label: raw, Side: n.Side.String(), Token: n.Token}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"pairs": rows, "total": len(rows)})
	}
	for _, row := range rows {
		printInfo("%4d  %-12s %-30s %-5s %s\n", row.Index, row.Pair, displayLabel(row.Label), row.Side, row.Token)
	}
	printInfo("\nTotal: %d pairs\n", len(rows))
	return nil
}
