package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/filter"
	"github.com/Veraticus/rentalmate/internal/model"
)

// LoadDefaultCriteria builds the criteria a filter reset returns to.
// Any filters.* key that is set overrides the built-in default; the result is normalized.
func LoadDefaultCriteria() (model.FilterCriteria, error) {
	c := model.DefaultCriteria()

	if viper.IsSet("filters.gender") {
		c.Gender = model.Gender(viper.GetString("filters.gender"))
	}
	if viper.IsSet("filters.max_rent") {
		c.MaxRent = viper.GetInt("filters.max_rent")
	}
	if viper.IsSet("filters.distance") {
		c.Distance = viper.GetFloat64("filters.distance")
	}
	if viper.IsSet("filters.food_included") {
		c.FoodIncluded = viper.GetBool("filters.food_included")
	}

	normalized, err := filter.Normalize(c)
	if err != nil {
		return model.FilterCriteria{}, fmt.Errorf("%w: filters: %w", common.ErrInvalidConfig, err)
	}
	return normalized, nil
}
