package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/rentalmate/internal/cli"
	"github.com/Veraticus/rentalmate/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Search listings interactively",
		Long: `Open the interactive browser. Type to search by name or location; results
update on every keystroke. ctrl+g cycles gender, ctrl+f toggles food,
ctrl+←/→ change the rent limit, shift+←/→ the distance, ctrl+r clears all
filters. The filters you leave with are saved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, store, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			listings, err := cat.Listings(ctx)
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("The catalog is empty. Run rentalmate sync first."))
				return nil
			}

			criteria, err := cat.ActiveCriteria(ctx)
			if err != nil {
				return err
			}

			final, err := tui.Run(ctx, tui.Config{
				Listings: listings,
				Criteria: criteria,
				Defaults: cat.Defaults(),
			})
			if err != nil {
				return err
			}

			if _, err := cat.ApplyCriteria(ctx, final.Criteria()); err != nil {
				slog.Warn("Failed to save filters", "error", err)
			}
			return nil
		},
	}
}
