package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/rentalmate/internal/cli"
	"github.com/Veraticus/rentalmate/internal/model"
)

func filtersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show or change the saved filters",
	}

	cmd.AddCommand(filtersShowCmd())
	cmd.AddCommand(filtersSetCmd())
	cmd.AddCommand(filtersResetCmd())

	return cmd
}

func filtersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, store, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			criteria, err := cat.ActiveCriteria(ctx)
			if err != nil {
				return err
			}

			printCriteria(cmd, criteria, cat.ActiveCount(criteria))
			return nil
		},
	}
}

func filtersSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the active filters",
		Long: `Change the saved filters. Only the flags given are changed. Rent is rounded to
the nearest 500 between 3000 and 25000, distance to whole km between 1 and 15.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, store, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			active, err := cat.ActiveCriteria(ctx)
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd, active)
			if err != nil {
				return err
			}

			saved, err := cat.ApplyCriteria(ctx, criteria)
			if err != nil {
				return err
			}

			printCriteria(cmd, saved, cat.ActiveCount(saved))
			return nil
		},
	}

	addCriteriaFlags(cmd)
	return cmd
}

func filtersResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every filter back to the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, store, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			criteria, err := cat.ResetCriteria(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Filters cleared"))
			printCriteria(cmd, criteria, cat.ActiveCount(criteria))
			return nil
		},
	}
}

func printCriteria(cmd *cobra.Command, c model.FilterCriteria, active int) {
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderCriteriaSummary(c, active))
}
