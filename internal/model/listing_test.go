package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingGender(t *testing.T) {
	tests := []struct {
		input   string
		want    Gender
		wantErr bool
	}{
		{input: "Male", want: GenderMale},
		{input: " female ", want: GenderFemale},
		{input: "Mixed", want: GenderCoed},
		{input: "All", want: GenderCoed},
		{input: "co-ed", want: GenderCoed},
		{input: "Unisex", want: GenderCoed},
		{input: "", wantErr: true},
		{input: "robots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseListingGender(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCriteriaGender(t *testing.T) {
	tests := []struct {
		input   string
		want    Gender
		wantErr bool
	}{
		{input: "", want: GenderAll},
		{input: "ALL", want: GenderAll},
		{input: "male", want: GenderMale},
		{input: "Female", want: GenderFemale},
		{input: "Mixed", wantErr: true},
		{input: "co-ed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCriteriaGender(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListing_HasAmenity(t *testing.T) {
	l := Listing{Amenities: []string{"WiFi", "AC"}}

	assert.True(t, l.HasAmenity("wifi"))
	assert.True(t, l.HasAmenity("AC"))
	assert.False(t, l.HasAmenity("Gym"))
	assert.False(t, Listing{}.HasAmenity("WiFi"))
}

func TestListing_CoverImage(t *testing.T) {
	assert.Empty(t, Listing{}.CoverImage())
	assert.Equal(t, "a.jpg", Listing{Images: []string{"a.jpg", "b.jpg"}}.CoverImage())
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, GenderAll, c.Gender)
	assert.Equal(t, 15000, c.MaxRent)
	assert.InDelta(t, 5.0, c.Distance, 0.0001)
	assert.False(t, c.FoodIncluded)
	assert.Empty(t, c.SearchQuery)
}
