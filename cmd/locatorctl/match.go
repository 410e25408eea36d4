package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMatchCmd())
}

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pairs> <label>...",
		Short: "Find pairs whose label equals one of the given labels",
		Long: `The match command compares each pair's best available label with the
given labels, ignoring case and surrounding whitespace. The region catalog is
not consulted, and a side prefix must agree: "left CA1" does not match "CA1".

Example:
  locatorctl match pairs.tsv "left CA1" "right CA3"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(args)
		},
	}
	return cmd
}

func runMatch(args []string) error {
	loc, r, err := openSession(args[0])
	if err != nil {
		return err
	}
	literals := args[1:]

	mask, err := loc.Matching(literals)
	if err != nil {
		return fmt.Errorf("failed to match: %w", err)
	}
	labels, err := r.Labels()
	if err != nil {
		return err
	}
	pairLabels := r.Table.PairLabels()

	if jsonOut {
		matches := make([]maskRow, 0, mask.Count())
		for _, i := range mask.Indices() {
			matches = append(matches, maskRow{Index: i, Pair: pairLabels[i], Label: labels[i], Match: true})
		}
		return printJSON(map[string]interface{}{
			"labels":  literals,
			"matches": matches,
			"total":   len(mask),
		})
	}

	for _, i := range mask.Indices() {
		printInfo("%4d  %-12s %s\n", i, pairLabels[i], labels[i])
	}
	printInfo("\nMatched: %d of %d pairs\n", mask.Count(), len(mask))
	return nil
}
