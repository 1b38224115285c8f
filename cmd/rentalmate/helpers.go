package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/rentalmate/internal/catalog"
	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/config"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/Veraticus/rentalmate/internal/service"
	"github.com/Veraticus/rentalmate/internal/storage"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openCatalog opens storage and wraps it in a catalog using the configured default criteria.
// The caller closes the returned storage.
func openCatalog(ctx context.Context, opts ...catalog.Option) (*catalog.Catalog, service.Storage, error) {
	defaults, err := config.LoadDefaultCriteria()
	if err != nil {
		return nil, nil, err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	return catalog.New(store, defaults, opts...), store, nil
}

// addCriteriaFlags registers the filter flags shared by listings list and filters set.
func addCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "match name or location (case-insensitive)")
	cmd.Flags().String("gender", "", "All, Male or Female")
	cmd.Flags().Int("max-rent", 0, "maximum monthly rent in rupees")
	cmd.Flags().Bool("food", false, "only listings with food included")
	cmd.Flags().Float64("distance", 0, "maximum distance from college in km")
}

// criteriaFromFlags overrides base with every filter flag the user actually set.
func criteriaFromFlags(cmd *cobra.Command, base model.FilterCriteria) (model.FilterCriteria, error) {
	c := base
	flags := cmd.Flags()

	if flags.Changed("search") {
		c.SearchQuery, _ = flags.GetString("search")
	}
	if flags.Changed("gender") {
		raw, _ := flags.GetString("gender")
		gender, err := model.ParseCriteriaGender(raw)
		if err != nil {
			return base, common.NewUserError("gender must be All, Male or Female", fmt.Errorf("%w: %w", common.ErrInvalidCriteria, err))
		}
		c.Gender = gender
	}
	if flags.Changed("max-rent") {
		c.MaxRent, _ = flags.GetInt("max-rent")
		if c.MaxRent < 0 {
			return base, common.NewUserError("max rent cannot be negative", common.ErrInvalidCriteria)
		}
	}
	if flags.Changed("food") {
		c.FoodIncluded, _ = flags.GetBool("food")
	}
	if flags.Changed("distance") {
		c.Distance, _ = flags.GetFloat64("distance")
		if c.Distance < 0 {
			return base, common.NewUserError("distance cannot be negative", common.ErrInvalidCriteria)
		}
	}

	return c, nil
}
