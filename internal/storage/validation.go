// Package storage provides the data persistence layer for rentalmate.
package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidListing = errors.New("invalid listing")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateListings(listings []model.Listing) error {
	for i := range listings {
		if err := validateListing(&listings[i]); err != nil {
			return fmt.Errorf("listing at index %d: %w", i, err)
		}
	}
	return nil
}

func validateListing(l *model.Listing) error {
	switch {
	case strings.TrimSpace(l.ID) == "":
		return fmt.Errorf("%w: missing ID", ErrInvalidListing)
	case strings.TrimSpace(l.Name) == "":
		return fmt.Errorf("%w: missing name", ErrInvalidListing)
	case strings.TrimSpace(l.Location) == "":
		return fmt.Errorf("%w: missing location", ErrInvalidListing)
	case l.Price < 0:
		return fmt.Errorf("%w: negative price %d", ErrInvalidListing, l.Price)
	case l.Distance < 0 || math.IsNaN(l.Distance) || math.IsInf(l.Distance, 0):
		return fmt.Errorf("%w: bad distance %v", ErrInvalidListing, l.Distance)
	}

	switch l.Gender {
	case model.GenderMale, model.GenderFemale, model.GenderCoed:
	default:
		return fmt.Errorf("%w: gender %q", ErrInvalidListing, l.Gender)
	}
	return nil
}

func validateCriteria(c model.FilterCriteria) error {
	if _, err := model.ParseCriteriaGender(string(c.Gender)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidCriteria, err)
	}
	if c.MaxRent < 0 {
		return fmt.Errorf("%w: negative max rent", common.ErrInvalidCriteria)
	}
	if c.Distance < 0 || math.IsNaN(c.Distance) || math.IsInf(c.Distance, 0) {
		return fmt.Errorf("%w: bad distance %v", common.ErrInvalidCriteria, c.Distance)
	}
	return nil
}
