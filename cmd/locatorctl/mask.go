package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locatorkit/internal/config"
	"github.com/joshuapare/locatorkit/region"
)

var (
	maskSide    string
	maskRegions string
	maskOnly    bool
)

func init() {
	cmd := newMaskCmd()
	cmd.Flags().StringVar(&maskSide, "side", "any", "Hemisphere filter: any, left or right")
	cmd.Flags().StringVar(&maskRegions, "regions", "", "Comma-separated region names instead of a group")
	cmd.Flags().BoolVar(&maskOnly, "matched", false, "Only print pairs that match")
	rootCmd.AddCommand(cmd)
}

func newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask <pairs> [group]",
		Short: "Show which pairs fall in a region group",
		Long: `The mask command prints, for every contact pair, whether its best
available label falls in a region group. Pairs without a side in their label
match both --side left and --side right.

Example:
  locatorctl mask pairs.tsv hippocampus
  locatorctl mask pairs.tsv mtl --side left --matched
  locatorctl mask pairs.tsv --regions "amygdala,entorhinal" --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMask(args)
		},
	}
	return cmd
}

type maskRow struct {
	Index int    `json:"index"`
	Pair  string `json:"pair"`
	Label string `json:"label"`
	Match bool   `json:"match"`
}

func runMask(args []string) error {
	side, err := parseSide(maskSide)
	if err != nil {
		return err
	}
	explicit := config.SplitList(maskRegions)
	if len(args) == 2 && len(explicit) > 0 {
		return fmt.Errorf("give either a group or --regions, not both")
	}
	if len(args) == 1 && len(explicit) == 0 {
		return fmt.Errorf("a group or --regions is required")
	}

	loc, r, err := openSession(args[0])
	if err != nil {
		return err
	}

	var mask region.Mask
	query := strings.Join(explicit, ",")
	if len(args) == 2 {
		query = args[1]
		mask, err = loc.Group(args[1], side)
	} else {
		switch side {
		case region.LeftSide:
			mask, err = loc.LeftRegions(explicit)
		case region.RightSide:
			mask, err = loc.RightRegions(explicit)
		default:
			mask, err = loc.Regions(explicit)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to match: %w", err)
	}

	labels, err := r.Labels()
	if err != nil {
		return err
	}
	pairLabels := r.Table.PairLabels()

	rows := make([]maskRow, 0, len(mask))
	for i, m := range mask {
		if maskOnly && !m {
			continue
		}
		rows = append(rows, maskRow{Index: i, Pair: pairLabels[i], Label: labels[i], Match: m})
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"query":   query,
			"side":    side.String(),
			"pairs":   rows,
			"matched": mask.Count(),
			"total":   len(mask),
		})
	}

	for _, row := range rows {
		printInfo("%4d  %-12s %-30s %t\n", row.Index, row.Pair, displayLabel(row.Label), row.Match)
	}
	printInfo("\nMatched: %d of %d pairs (%s, side %s)\n", mask.Count(), len(mask), query, side)
	return nil
}

func displayLabel(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
