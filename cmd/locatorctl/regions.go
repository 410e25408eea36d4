package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locatorkit/pkg/locator"
)

func init() {
	rootCmd.AddCommand(newRegionsCmd())
}

func newRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions [group]",
		Short: "List region groups or the names in one group",
		Long: `The regions command lists the catalog's region groups, or the canonical
region names of one group. It needs no session data.

Example:
  locatorctl regions
  locatorctl regions hippocampus
  locatorctl regions mtl_regions --json
  locatorctl regions --catalog lab-catalog.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(args)
		},
	}
	return cmd
}

type groupSummary struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func runRegions(args []string) error {
	opts, err := catalogOptions()
	if err != nil {
		return err
	}
	loc := locator.New(nil, opts...)

	if len(args) == 1 {
		names, err := loc.RegionList(args[0])
		if err != nil {
			return fmt.Errorf("failed to list regions: %w", err)
		}
		if jsonOut {
			return printJSON(map[string]interface{}{
				"group":   args[0],
				"regions": names,
				"count":   len(names),
			})
		}
		for _, name := range names {
			printInfo("%s\n", name)
		}
		return nil
	}

	ids := loc.Catalog().IDs()
	groups := make([]groupSummary, 0, len(ids))
	for _, id := range ids {
		names, err := loc.RegionList(string(id))
		if err != nil {
			return err
		}
		groups = append(groups, groupSummary{ID: string(id), Count: len(names)})
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"groups": groups})
	}
	printInfo("Region groups:\n")
	for _, g := range groups {
		printInfo("  %-12s %d names\n", g.ID, g.Count)
	}
	return nil
}
