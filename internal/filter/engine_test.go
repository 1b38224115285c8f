package filter

import (
	"testing"

	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sunrise() model.Listing {
	return model.Listing{
		ID:           "1",
		Name:         "Sunrise PG",
		Location:     "Sector 15, Chandigarh",
		Price:        8000,
		Gender:       model.GenderMale,
		FoodIncluded: true,
		Distance:     2.5,
		Amenities:    []string{"WiFi", "AC", "Laundry", "Parking"},
	}
}

func goldenHeights() model.Listing {
	return model.Listing{
		ID:           "2",
		Name:         "Golden Heights PG",
		Location:     "Civil Lines, Dehradun",
		Price:        12000,
		Gender:       model.GenderFemale,
		FoodIncluded: true,
		Distance:     1.8,
	}
}

func sampleListings() []model.Listing {
	return []model.Listing{sunrise(), goldenHeights()}
}

func criteria(mod func(*model.FilterCriteria)) model.FilterCriteria {
	c := model.DefaultCriteria()
	if mod != nil {
		mod(&c)
	}
	return c
}

func ids(listings []model.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestApply_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.FilterCriteria
		want     []string
	}{
		{
			name:     "gender male",
			criteria: criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderMale }),
			want:     []string{"1"},
		},
		{
			name:     "max rent excludes the pricier PG",
			criteria: criteria(func(c *model.FilterCriteria) { c.MaxRent = 10000 }),
			want:     []string{"1"},
		},
		{
			name:     "search matches location case-insensitively",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = "dehradun" }),
			want:     []string{"2"},
		},
		{
			name:     "search in upper case",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = "DEHRADUN" }),
			want:     []string{"2"},
		},
		{
			name:     "search matches name",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = "sunrise" }),
			want:     []string{"1"},
		},
		{
			name:     "search with no hit",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = "mumbai" }),
			want:     []string{},
		},
		{
			name:     "search ignores surrounding whitespace",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = " dehradun " }),
			want:     []string{"2"},
		},
		{
			name:     "whitespace search is disabled",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = "   " }),
			want:     []string{"1", "2"},
		},
		{
			name:     "distance bound",
			criteria: criteria(func(c *model.FilterCriteria) { c.Distance = 2 }),
			want:     []string{"2"},
		},
		{
			name:     "bounds are inclusive",
			criteria: criteria(func(c *model.FilterCriteria) { c.MaxRent = 8000; c.Distance = 2.5 }),
			want:     []string{"1"},
		},
		{
			name:     "defaults keep both",
			criteria: model.DefaultCriteria(),
			want:     []string{"1", "2"},
		},
		{
			name: "conjunction across categories",
			criteria: criteria(func(c *model.FilterCriteria) {
				c.Gender = model.GenderFemale
				c.MaxRent = 10000
			}),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleListings(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_FoodPredicate(t *testing.T) {
	noFood := sunrise()
	noFood.ID = "3"
	noFood.FoodIncluded = false
	listings := []model.Listing{sunrise(), noFood}

	got := Apply(listings, criteria(func(c *model.FilterCriteria) { c.FoodIncluded = true }))
	assert.Equal(t, []string{"1"}, ids(got))

	// false disables the predicate rather than excluding food-included PGs
	got = Apply(listings, criteria(func(c *model.FilterCriteria) { c.FoodIncluded = false }))
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestApply_CoedListingOnlyMatchesAll(t *testing.T) {
	coed := sunrise()
	coed.Gender = model.GenderCoed
	listings := []model.Listing{coed}

	assert.Len(t, Apply(listings, model.DefaultCriteria()), 1)
	assert.Empty(t, Apply(listings, criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderMale })))
	assert.Empty(t, Apply(listings, criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderFemale })))
}

func TestApply_EmptyInput(t *testing.T) {
	for _, c := range []model.FilterCriteria{
		model.DefaultCriteria(),
		criteria(func(c *model.FilterCriteria) { c.SearchQuery = "x"; c.FoodIncluded = true }),
		{},
	} {
		got := Apply(nil, c)
		require.NotNil(t, got)
		assert.Empty(t, got)

		got = Apply([]model.Listing{}, c)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestApply_MissingOptionalFields(t *testing.T) {
	bare := model.Listing{ID: "bare", Name: "Bare PG", Location: "Kota", Price: 5000, Gender: model.GenderMale, Distance: 1}

	got := Apply([]model.Listing{bare}, model.DefaultCriteria())
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Amenities)
}

func TestApply_SingleListingIffAllPredicates(t *testing.T) {
	l := sunrise()
	cases := []model.FilterCriteria{
		model.DefaultCriteria(),
		criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderFemale }),
		criteria(func(c *model.FilterCriteria) { c.MaxRent = 7999 }),
		criteria(func(c *model.FilterCriteria) { c.Distance = 2.4 }),
		criteria(func(c *model.FilterCriteria) { c.FoodIncluded = true }),
		criteria(func(c *model.FilterCriteria) { c.SearchQuery = "chandigarh" }),
		criteria(func(c *model.FilterCriteria) { c.SearchQuery = "pune" }),
	}

	for _, c := range cases {
		want := matchesSearch(l, c) && matchesGender(l, c) && matchesRent(l, c) &&
			matchesFood(l, c) && matchesDistance(l, c)

		got := Apply([]model.Listing{l}, c)
		if want {
			assert.Equal(t, []model.Listing{l}, got, "criteria %+v", c)
		} else {
			assert.Empty(t, got, "criteria %+v", c)
		}
		assert.Equal(t, want, Matches(l, c))
	}
}

func TestApply_Idempotent(t *testing.T) {
	listings := append(sampleListings(), model.Listing{ID: "3", Name: "Student Haven", Location: "Kota", Price: 6500, Gender: model.GenderMale, Distance: 3.2})
	c := criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderMale; c.MaxRent = 9000 })

	once := Apply(listings, c)
	twice := Apply(once, c)
	assert.Equal(t, once, twice)
}

func TestApply_PreservesOrder(t *testing.T) {
	listings := []model.Listing{
		{ID: "c", Name: "C", Price: 9000, Gender: model.GenderMale, Distance: 1},
		{ID: "a", Name: "A", Price: 20000, Gender: model.GenderMale, Distance: 1},
		{ID: "b", Name: "B", Price: 4000, Gender: model.GenderMale, Distance: 1},
		{ID: "d", Name: "D", Price: 7000, Gender: model.GenderMale, Distance: 1},
	}

	got := Apply(listings, model.DefaultCriteria())
	assert.Equal(t, []string{"c", "b", "d"}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	listings := sampleListings()
	snapshot := sampleListings()

	_ = Apply(listings, criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderMale }))
	assert.Equal(t, snapshot, listings)
}

func TestApply_DefaultsOnlyExcludeRentAndDistance(t *testing.T) {
	listings := []model.Listing{
		{ID: "ok", Price: 15000, Distance: 5, Gender: model.GenderFemale},
		{ID: "pricey", Price: 15001, Distance: 1, Gender: model.GenderMale},
		{ID: "far", Price: 100, Distance: 5.01, Gender: model.GenderCoed},
		{ID: "nofood", Price: 100, Distance: 0, Gender: model.GenderCoed, FoodIncluded: false},
	}

	got := Apply(listings, model.DefaultCriteria())
	assert.Equal(t, []string{"ok", "nofood"}, ids(got))
}

func TestCountActive(t *testing.T) {
	defaults := model.DefaultCriteria()

	tests := []struct {
		name     string
		criteria model.FilterCriteria
		want     int
	}{
		{name: "defaults", criteria: defaults, want: 0},
		{
			name: "gender only",
			criteria: model.FilterCriteria{
				Gender: model.GenderFemale, MaxRent: 15000, Distance: 5,
			},
			want: 1,
		},
		{
			name: "everything",
			criteria: model.FilterCriteria{
				Gender: model.GenderMale, MaxRent: 9000, Distance: 2, FoodIncluded: true,
			},
			want: 4,
		},
		{
			name:     "raising bounds is not a filter",
			criteria: criteria(func(c *model.FilterCriteria) { c.MaxRent = 25000; c.Distance = 15 }),
			want:     0,
		},
		{
			name:     "search query is not counted",
			criteria: criteria(func(c *model.FilterCriteria) { c.SearchQuery = "pune" }),
			want:     0,
		},
		{
			name:     "unset gender equals All",
			criteria: criteria(func(c *model.FilterCriteria) { c.Gender = "" }),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountActive(tt.criteria, defaults))
		})
	}
}

func TestReset(t *testing.T) {
	defaults := model.DefaultCriteria()
	current := criteria(func(c *model.FilterCriteria) { c.Gender = model.GenderMale; c.MaxRent = 5000 })

	reset := Reset(defaults)
	assert.Equal(t, defaults, reset)
	assert.Equal(t, model.GenderMale, current.Gender, "existing criteria must not change")

	reset.MaxRent = 1
	assert.Equal(t, model.DefaultMaxRent, defaults.MaxRent, "reset returns a copy")
}
