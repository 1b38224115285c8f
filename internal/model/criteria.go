package model

// Default filter values, matching what a fresh filter sheet shows.
const (
	DefaultMaxRent  = 15000
	DefaultDistance = 5.0
)

// FilterCriteria is the user's current filter selection.
// It is replaced wholesale by whoever edits it and only ever read by the filter engine.
type FilterCriteria struct {
	Gender       Gender
	SearchQuery  string
	MaxRent      int
	Distance     float64
	FoodIncluded bool
}

// DefaultCriteria returns the criteria a new session starts with.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Gender:   GenderAll,
		MaxRent:  DefaultMaxRent,
		Distance: DefaultDistance,
	}
}
