package cli

import (
	"context"
	"fmt"

	"github.com/facilsec-lab/argus/pkg/cli/config"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a scoring catalog file",
		Flags: catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := catalogCfg.Path()
			if path == "" {
				return goerr.New("catalog is required")
			}

			catalog, err := config.LoadScoringCatalog(path)
			if err != nil {
				color.Red("✗ %s", path)
				fmt.Println(err.Error())
				return goerr.Wrap(err, "catalog validation failed")
			}

			color.Green("✓ %s", path)
			fmt.Printf("  templates:       %d\n", len(catalog.Templates))
			fmt.Printf("  control weights: %d\n", len(catalog.ControlWeights))
			fmt.Printf("  threats:         %d\n", len(catalog.Threats))

			totalWeight := 0.0
			for _, w := range catalog.ControlWeights {
				totalWeight += w.Weight
			}
			if totalWeight > 1.0 {
				color.Yellow("  warning: control weights sum to %.2f; effectiveness is capped at 0.95", totalWeight)
			}

			return nil
		},
	}
}
