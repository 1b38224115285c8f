// Package filter evaluates filter criteria against listing collections.
//
// Everything here is a pure function over its arguments: nothing is cached
// between calls and no input is modified, so callers may re-run a filter on
// every keystroke without coordination.
package filter

import (
	"strings"

	"github.com/Veraticus/rentalmate/internal/model"
)

// predicate reports whether a listing passes one category of the criteria.
type predicate func(l model.Listing, c model.FilterCriteria) bool

// predicates are combined with AND; order only affects how early a listing is rejected.
var predicates = []predicate{
	matchesSearch,
	matchesGender,
	matchesRent,
	matchesFood,
	matchesDistance,
}

// Apply returns the listings that satisfy every active predicate of c, in input order.
// The result is never nil.
func Apply(listings []model.Listing, c model.FilterCriteria) []model.Listing {
	filtered := make([]model.Listing, 0, len(listings))

	for _, l := range listings {
		if Matches(l, c) {
			filtered = append(filtered, l)
		}
	}

	return filtered
}

// Matches reports whether a single listing satisfies all of c.
func Matches(l model.Listing, c model.FilterCriteria) bool {
	for _, p := range predicates {
		if !p(l, c) {
			return false
		}
	}
	return true
}

// matchesSearch is a case-insensitive substring match on name OR location,
// ignoring surrounding whitespace in the query. A blank query matches everything.
func matchesSearch(l model.Listing, c model.FilterCriteria) bool {
	query := strings.ToLower(strings.TrimSpace(c.SearchQuery))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Location), query)
}

func matchesGender(l model.Listing, c model.FilterCriteria) bool {
	g := criteriaGender(c)
	return g == model.GenderAll || l.Gender == g
}

// criteriaGender treats an unset gender as All.
func criteriaGender(c model.FilterCriteria) model.Gender {
	if c.Gender == "" {
		return model.GenderAll
	}
	return c.Gender
}

func matchesRent(l model.Listing, c model.FilterCriteria) bool {
	return l.Price <= c.MaxRent
}

// matchesFood only restricts when food is requested; false never excludes food-included PGs.
func matchesFood(l model.Listing, c model.FilterCriteria) bool {
	return !c.FoodIncluded || l.FoodIncluded
}

func matchesDistance(l model.Listing, c model.FilterCriteria) bool {
	return l.Distance <= c.Distance
}

// CountActive returns how many fields of c differ from defaults.
// Used to badge the filter button.
func CountActive(c, defaults model.FilterCriteria) int {
	count := 0
	if criteriaGender(c) != criteriaGender(defaults) {
		count++
	}
	if c.MaxRent < defaults.MaxRent {
		count++
	}
	if c.FoodIncluded && !defaults.FoodIncluded {
		count++
	}
	if c.Distance < defaults.Distance {
		count++
	}
	return count
}

// Reset returns a fresh copy of defaults.
func Reset(defaults model.FilterCriteria) model.FilterCriteria {
	return defaults
}
