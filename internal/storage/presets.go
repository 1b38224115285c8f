package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
)

// SaveCriteria stores criteria under name, replacing any previous preset of that name.
func (s *SQLiteStorage) SaveCriteria(ctx context.Context, name string, c model.FilterCriteria) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}
	if err := validateCriteria(c); err != nil {
		return err
	}

	gender := c.Gender
	if gender == "" {
		gender = model.GenderAll
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filter_presets (name, gender, search_query, max_rent, distance, food_included, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			gender = excluded.gender,
			search_query = excluded.search_query,
			max_rent = excluded.max_rent,
			distance = excluded.distance,
			food_included = excluded.food_included,
			updated_at = excluded.updated_at
	`, name, string(gender), c.SearchQuery, c.MaxRent, c.Distance, c.FoodIncluded, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save filter preset: %w", err)
	}
	return nil
}

// GetCriteria loads the preset called name, or returns common.ErrNotFound.
func (s *SQLiteStorage) GetCriteria(ctx context.Context, name string) (*model.FilterCriteria, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var (
		c      model.FilterCriteria
		gender string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT gender, search_query, max_rent, distance, food_included
		FROM filter_presets
		WHERE name = ?
	`, name).Scan(&gender, &c.SearchQuery, &c.MaxRent, &c.Distance, &c.FoodIncluded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("filter preset %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get filter preset: %w", err)
	}

	c.Gender = model.Gender(gender)
	return &c, nil
}

// DeleteCriteria removes a preset. Deleting a preset that does not exist is not an error.
func (s *SQLiteStorage) DeleteCriteria(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM filter_presets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete filter preset: %w", err)
	}
	return nil
}
