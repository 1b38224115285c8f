// Package ingest turns raw listing documents from any source into canonical model.Listing values.
//
// Listing documents come in several historical shapes (food vs foodIncluded, a
// numeric distance vs a "1.2 km" distanceFromCollege string, prices stored as
// strings). Decode resolves all of them into one schema, defaulting absent or
// unusable optional fields and rejecting records whose required fields are unusable.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/spf13/cast"
)

// Document is one raw listing record as delivered by a data source.
type Document struct {
	Data map[string]any
	ID   string
}

// InvalidListingDataError reports a listing record whose required field cannot be used.
// It matches common.ErrInvalidListingData with errors.Is.
type InvalidListingDataError struct {
	Value      any
	Err        error
	DocumentID string
	Field      string
}

func (e *InvalidListingDataError) Error() string {
	msg := fmt.Sprintf("invalid listing data in document %q: field %q", e.DocumentID, e.Field)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidListingDataError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, common.ErrInvalidListingData) match any decode failure.
func (e *InvalidListingDataError) Is(target error) bool {
	return target == common.ErrInvalidListingData
}

var (
	errMissing  = errors.New("required field is missing")
	errNegative = errors.New("must not be negative")
	errTooLarge = errors.New("is out of range")
)

// maxPrice bounds a decoded rent so it always fits the int column.
const maxPrice = math.MaxInt32

// Decode converts a raw document into a Listing.
func Decode(doc Document) (model.Listing, error) {
	data := doc.Data
	if data == nil {
		data = map[string]any{}
	}

	invalid := func(field string, value any, err error) (model.Listing, error) {
		return model.Listing{}, &InvalidListingDataError{
			DocumentID: doc.ID,
			Field:      field,
			Value:      value,
			Err:        err,
		}
	}

	id := doc.ID
	if id == "" {
		id = cast.ToString(data["id"])
	}
	if strings.TrimSpace(id) == "" {
		return invalid("id", data["id"], errMissing)
	}
	doc.ID = id

	name, ok := requiredString(data, "name", "title")
	if !ok {
		return invalid("name", data["name"], errMissing)
	}
	location, ok := requiredString(data, "location", "address")
	if !ok {
		return invalid("location", data["location"], errMissing)
	}

	rawPrice, ok := first(data, "price", "rent")
	if !ok {
		return invalid("price", nil, errMissing)
	}
	price, err := toPrice(rawPrice)
	if err != nil {
		return invalid("price", rawPrice, err)
	}

	gender := model.GenderCoed
	if raw, ok := first(data, "gender"); ok && cast.ToString(raw) != "" {
		gender, err = model.ParseListingGender(cast.ToString(raw))
		if err != nil {
			return invalid("gender", raw, err)
		}
	}

	var distance float64
	if raw, ok := first(data, "distance", "distanceFromCollege"); ok {
		if distance, err = toDistance(raw); err != nil {
			slog.Debug("Ignoring unusable distance", "id", id, "value", raw, "error", err)
			distance = 0
		}
	}

	var food bool
	if raw, ok := first(data, "foodIncluded", "food"); ok {
		if food, err = cast.ToBoolE(raw); err != nil {
			slog.Debug("Ignoring unusable food flag", "id", id, "value", raw, "error", err)
			food = false
		}
	}

	return model.Listing{
		ID:           id,
		Name:         name,
		Location:     location,
		Description:  optionalString(data, "description"),
		Owner:        optionalString(data, "owner", "ownerName"),
		Contact:      optionalString(data, "contact", "phone"),
		Price:        price,
		Gender:       gender,
		FoodIncluded: food,
		Distance:     distance,
		Amenities:    toAmenities(data["amenities"]),
		Images:       toImages(data),
		Rating:       cast.ToFloat64(data["rating"]),
		Verified:     cast.ToBool(data["verified"]),
		CreatedAt:    toTime(data["createdAt"]),
	}, nil
}

// DecodeAll decodes every document, collecting failures instead of stopping at the first.
func DecodeAll(docs []Document) ([]model.Listing, []error) {
	listings := make([]model.Listing, 0, len(docs))
	var errs []error

	for _, doc := range docs {
		l, err := Decode(doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		listings = append(listings, l)
	}

	return listings, errs
}

// first returns the value of the first key present and non-nil.
func first(data map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func requiredString(data map[string]any, keys ...string) (string, bool) {
	v, ok := first(data, keys...)
	if !ok {
		return "", false
	}
	s := strings.TrimSpace(cast.ToString(v))
	return s, s != ""
}

func optionalString(data map[string]any, keys ...string) string {
	v, _ := first(data, keys...)
	return strings.TrimSpace(cast.ToString(v))
}

func toPrice(raw any) (int, error) {
	if s, ok := raw.(string); ok {
		raw = strings.NewReplacer(",", "", "₹", "", " ", "").Replace(s)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	if f < 0 {
		return 0, errNegative
	}
	if f > maxPrice {
		return 0, errTooLarge
	}
	return int(math.Round(f)), nil
}

// toDistance accepts numbers and strings such as "1.2 km".
func toDistance(raw any) (float64, error) {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(strings.ToLower(s))
		s = strings.TrimSpace(strings.TrimSuffix(s, "km"))
		raw = s
	}
	d, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	if d < 0 {
		return 0, errNegative
	}
	return d, nil
}

// toAmenities accepts a list of tags or the add-form map of tag -> enabled.
func toAmenities(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case map[string]any:
		tags := make([]string, 0, len(v))
		for name, enabled := range v {
			if cast.ToBool(enabled) {
				tags = append(tags, name)
			}
		}
		sort.Strings(tags)
		return tags
	case map[string]bool:
		tags := make([]string, 0, len(v))
		for name, enabled := range v {
			if enabled {
				tags = append(tags, name)
			}
		}
		sort.Strings(tags)
		return tags
	default:
		tags, err := cast.ToStringSliceE(v)
		if err != nil {
			return []string{}
		}
		return dedupe(tags)
	}
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func toImages(data map[string]any) []string {
	if raw, ok := data["images"]; ok && raw != nil {
		images, err := cast.ToStringSliceE(raw)
		if err == nil {
			return images
		}
	}
	if img := optionalString(data, "image"); img != "" {
		return []string{img}
	}
	return []string{}
}

func toTime(raw any) time.Time {
	if raw == nil {
		return time.Time{}
	}
	t, err := cast.ToTimeE(raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
