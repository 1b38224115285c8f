package filter

import (
	"math"
	"testing"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input model.FilterCriteria
		want  model.FilterCriteria
	}{
		{
			name:  "defaults unchanged",
			input: model.DefaultCriteria(),
			want:  model.DefaultCriteria(),
		},
		{
			name:  "rent rounds to step",
			input: model.FilterCriteria{Gender: model.GenderAll, MaxRent: 8260, Distance: 5},
			want:  model.FilterCriteria{Gender: model.GenderAll, MaxRent: 8500, Distance: 5},
		},
		{
			name:  "rent clamped low and distance clamped high",
			input: model.FilterCriteria{Gender: "male", MaxRent: 100, Distance: 40},
			want:  model.FilterCriteria{Gender: model.GenderMale, MaxRent: 3000, Distance: 15},
		},
		{
			name:  "rent clamped high and distance rounded",
			input: model.FilterCriteria{Gender: "Female", MaxRent: 90000, Distance: 2.6, FoodIncluded: true},
			want:  model.FilterCriteria{Gender: model.GenderFemale, MaxRent: 25000, Distance: 3, FoodIncluded: true},
		},
		{
			name:  "distance floor and search trimmed",
			input: model.FilterCriteria{Gender: "", MaxRent: 15000, Distance: 0, SearchQuery: "  Pune "},
			want:  model.FilterCriteria{Gender: model.GenderAll, MaxRent: 15000, Distance: 1, SearchQuery: "Pune"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_RejectsBadInput(t *testing.T) {
	_, err := Normalize(model.FilterCriteria{Gender: model.GenderCoed, MaxRent: 5000, Distance: 2})
	require.ErrorIs(t, err, common.ErrInvalidCriteria)

	_, err = Normalize(model.FilterCriteria{Gender: model.GenderAll, MaxRent: 5000, Distance: math.NaN()})
	require.ErrorIs(t, err, common.ErrInvalidCriteria)
}
