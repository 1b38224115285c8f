package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
)

// Editor limits. Rent moves in steps of RentStep between MinRent and MaxRentLimit,
// distance in whole kilometres between MinDistance and MaxDistanceLimit.
const (
	MinRent          = 3000
	MaxRentLimit     = 25000
	RentStep         = 500
	MinDistance      = 1.0
	MaxDistanceLimit = 15.0
)

// Normalize clamps criteria coming from user input to the ranges the editor offers.
// It returns ErrInvalidCriteria when the gender is not a filter gender.
func Normalize(c model.FilterCriteria) (model.FilterCriteria, error) {
	gender, err := model.ParseCriteriaGender(string(c.Gender))
	if err != nil {
		return c, fmt.Errorf("%w: %v", common.ErrInvalidCriteria, err)
	}
	if math.IsNaN(c.Distance) {
		return c, fmt.Errorf("%w: distance is not a number", common.ErrInvalidCriteria)
	}

	return model.FilterCriteria{
		Gender:       gender,
		SearchQuery:  strings.TrimSpace(c.SearchQuery),
		MaxRent:      clampRent(c.MaxRent),
		Distance:     clampDistance(c.Distance),
		FoodIncluded: c.FoodIncluded,
	}, nil
}

func clampRent(rent int) int {
	stepped := int(math.Round(float64(rent)/RentStep)) * RentStep
	return max(MinRent, min(MaxRentLimit, stepped))
}

func clampDistance(d float64) float64 {
	return math.Max(MinDistance, math.Min(MaxDistanceLimit, math.Round(d)))
}
