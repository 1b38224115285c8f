package model

import (
	"fmt"
	"strings"
	"time"
)

// Gender describes who a listing accepts, or which listings a filter wants.
type Gender string

const (
	// GenderAll disables gender filtering. Only meaningful on FilterCriteria.
	GenderAll Gender = "All"
	// GenderMale marks a boys-only PG.
	GenderMale Gender = "Male"
	// GenderFemale marks a girls-only PG.
	GenderFemale Gender = "Female"
	// GenderCoed marks a PG open to everyone.
	GenderCoed Gender = "Co-ed"
)

// ParseListingGender maps the spellings found in listing documents onto a canonical Gender.
// "Mixed", "All", "Unisex" and "Coed" all mean a co-ed PG.
func ParseListingGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "boys", "m":
		return GenderMale, nil
	case "female", "girls", "f":
		return GenderFemale, nil
	case "co-ed", "coed", "mixed", "all", "unisex", "any":
		return GenderCoed, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

// ParseCriteriaGender parses the gender selection of a filter.
func ParseCriteriaGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return GenderAll, nil
	case "male", "boys", "m":
		return GenderMale, nil
	case "female", "girls", "f":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("gender must be one of All, Male, Female, got %q", s)
	}
}

// Listing is one rentable PG as seen by the rest of the application.
// Listings are treated as immutable once decoded.
type Listing struct {
	CreatedAt    time.Time
	ID           string
	Name         string
	Location     string
	Description  string
	Owner        string
	Contact      string
	Gender       Gender
	Amenities    []string
	Images       []string
	Price        int
	Distance     float64
	Rating       float64
	FoodIncluded bool
	Verified     bool
}

// HasAmenity reports whether the listing carries the amenity tag, ignoring case.
func (l Listing) HasAmenity(name string) bool {
	for _, a := range l.Amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// CoverImage returns the first image URI, or "" when the listing has none.
func (l Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
