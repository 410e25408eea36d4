package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/locatorkit/internal/logger"
	"github.com/joshuapare/locatorkit/internal/pairs"
	"github.com/joshuapare/locatorkit/pkg/locator"
	"github.com/joshuapare/locatorkit/region"
)

// catalogOptions builds the locator options implied by settings.
func catalogOptions() ([]locator.Option, error) {
	opts := []locator.Option{locator.WithLogger(logger.L)}
	cat := region.Default()
	var priority []region.GroupID

	if settings.CatalogPath != "" {
		printVerbose("Loading catalog: %s\n", settings.CatalogPath)
		c, p, err := region.LoadCatalogFile(settings.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat, priority = c, p
		if priority == nil {
			priority = c.IDs()
		}
		opts = append(opts, locator.WithCatalog(c))
	}

	if len(settings.Priority) > 0 {
		p, err := region.ParsePriority(cat, settings.Priority)
		if err != nil {
			return nil, fmt.Errorf("invalid priority: %w", err)
		}
		priority = p
	}
	if priority != nil {
		opts = append(opts, locator.WithPriority(priority...))
	}
	return opts, nil
}

// openSession loads the pairs table at path and returns a locator over it.
func openSession(path string) (*locator.Locator, *pairs.Reader, error) {
	opts, err := catalogOptions()
	if err != nil {
		return nil, nil, err
	}

	printVerbose("Opening pairs table: %s (%s)\n", path, settings.Encoding)
	r, err := pairs.NewReader(path, settings.LocalizationPath, pairs.Options{Encoding: settings.Encoding})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session: %w", err)
	}
	logger.Info("session opened", "path", path, "pairs", len(r.Table.Pairs),
		"localization", settings.LocalizationPath != "")

	return locator.New(r, opts...), r, nil
}

// parseSide converts a --side value.
func parseSide(s string) (region.SideFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "both":
		return region.AnySide, nil
	case "left", "l":
		return region.LeftSide, nil
	case "right", "r":
		return region.RightSide, nil
	}
	return region.AnySide, fmt.Errorf("invalid side %q (want any, left or right)", s)
}
