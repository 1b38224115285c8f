// Package catalog keeps the local listing catalog in step with its sources and
// answers filtered searches against it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/filter"
	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/Veraticus/rentalmate/internal/service"
)

// ActivePreset is the name the current filter selection is saved under.
const ActivePreset = "active"

// DefaultRating is given to listings added through AddListing.
const DefaultRating = 4.0

const (
	importBatchSize = 50
	minPhoneDigits  = 10
)

// Catalog coordinates storage, sources and the filter engine.
type Catalog struct {
	store    service.Storage
	progress func(saved int)
	newID    func() string
	now      func() time.Time
	defaults model.FilterCriteria
	retry    common.RetryOptions
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRetryOptions overrides the backoff used around source fetches.
func WithRetryOptions(opts common.RetryOptions) Option {
	return func(c *Catalog) {
		c.retry = opts
	}
}

// WithProgress registers a callback invoked after each saved batch with the batch size.
func WithProgress(fn func(saved int)) Option {
	return func(c *Catalog) {
		c.progress = fn
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// WithIDGenerator replaces the UUID generator used for new listings.
func WithIDGenerator(fn func() string) Option {
	return func(c *Catalog) {
		c.newID = fn
	}
}

// New creates a Catalog over store. defaults are the criteria a reset returns to.
func New(store service.Storage, defaults model.FilterCriteria, opts ...Option) *Catalog {
	c := &Catalog{
		store:    store,
		defaults: defaults,
		retry:    common.DefaultRetryOptions(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Defaults returns a copy of the default criteria.
func (c *Catalog) Defaults() model.FilterCriteria {
	return filter.Reset(c.defaults)
}

// SyncReport summarizes one Sync or Import run.
type SyncReport struct {
	Source   string
	Errors   []error
	Fetched  int
	Saved    int
	Skipped  int
	Duration time.Duration
}

// Sync fetches every document from src, decodes it and stores the valid listings.
// Invalid records are skipped and reported; they never abort the run.
func (c *Catalog) Sync(ctx context.Context, src service.ListingSource) (*SyncReport, error) {
	start := c.now()

	var docs []ingest.Document
	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		docs, fetchErr = src.FetchDocuments(ctx)
		return fetchErr
	}, c.retry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings from %s: %w", src.Name(), err)
	}

	report, err := c.Import(ctx, docs)
	report.Source = src.Name()
	report.Duration = c.now().Sub(start)
	if err != nil {
		return report, err
	}

	slog.Info("Sync complete",
		"source", report.Source,
		"fetched", report.Fetched,
		"saved", report.Saved,
		"skipped", report.Skipped,
		"duration", report.Duration)

	return report, nil
}

// Import decodes docs and stores the valid listings in batches.
// Batches are committed one at a time, so on a save error the returned report
// still counts the listings already stored.
func (c *Catalog) Import(ctx context.Context, docs []ingest.Document) (*SyncReport, error) {
	listings, errs := ingest.DecodeAll(docs)
	for _, err := range errs {
		slog.Warn("Skipping invalid listing", "error", err)
	}

	report := &SyncReport{
		Source:  "import",
		Fetched: len(docs),
		Skipped: len(errs),
		Errors:  errs,
	}

	for start := 0; start < len(listings); start += importBatchSize {
		end := min(start+importBatchSize, len(listings))
		batch := listings[start:end]

		if err := c.store.SaveListings(ctx, batch); err != nil {
			return report, fmt.Errorf("failed to save listings %d-%d: %w", start+1, end, err)
		}
		report.Saved += len(batch)
		if c.progress != nil {
			c.progress(len(batch))
		}
	}

	return report, nil
}

// Listings returns every stored listing.
func (c *Catalog) Listings(ctx context.Context) ([]model.Listing, error) {
	return c.store.GetListings(ctx)
}

// Listing returns one stored listing, or an error matching common.ErrNotFound.
func (c *Catalog) Listing(ctx context.Context, id string) (*model.Listing, error) {
	return c.store.GetListing(ctx, id)
}

// DeleteListing removes a stored listing.
func (c *Catalog) DeleteListing(ctx context.Context, id string) error {
	return c.store.DeleteListing(ctx, id)
}

// Search returns the stored listings that satisfy criteria, in catalog order.
func (c *Catalog) Search(ctx context.Context, criteria model.FilterCriteria) ([]model.Listing, error) {
	listings, err := c.store.GetListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return filter.Apply(listings, criteria), nil
}

// ActiveCriteria returns the saved filter selection, or the defaults when none is saved.
func (c *Catalog) ActiveCriteria(ctx context.Context) (model.FilterCriteria, error) {
	saved, err := c.store.GetCriteria(ctx, ActivePreset)
	if errors.Is(err, common.ErrNotFound) {
		return c.Defaults(), nil
	}
	if err != nil {
		return model.FilterCriteria{}, fmt.Errorf("failed to load active filters: %w", err)
	}
	return *saved, nil
}

// ApplyCriteria normalizes criteria and saves it as the active selection, replacing the previous one.
func (c *Catalog) ApplyCriteria(ctx context.Context, criteria model.FilterCriteria) (model.FilterCriteria, error) {
	normalized, err := filter.Normalize(criteria)
	if err != nil {
		return model.FilterCriteria{}, err
	}
	if err := c.store.SaveCriteria(ctx, ActivePreset, normalized); err != nil {
		return model.FilterCriteria{}, fmt.Errorf("failed to save active filters: %w", err)
	}
	return normalized, nil
}

// ResetCriteria clears the saved selection and returns the defaults.
func (c *Catalog) ResetCriteria(ctx context.Context) (model.FilterCriteria, error) {
	if err := c.store.DeleteCriteria(ctx, ActivePreset); err != nil {
		return model.FilterCriteria{}, fmt.Errorf("failed to reset filters: %w", err)
	}
	return c.Defaults(), nil
}

// ActiveCount is the number of filter categories in criteria that differ from the defaults.
func (c *Catalog) ActiveCount(criteria model.FilterCriteria) int {
	return filter.CountActive(criteria, c.defaults)
}

// NewListing is the add-listing form.
type NewListing struct {
	Name         string
	Location     string
	Description  string
	Owner        string
	Phone        string
	Gender       string
	Amenities    []string
	Images       []string
	Price        int
	Distance     float64
	FoodIncluded bool
}

// Validate checks the form the way the add screen does, returning a UserError naming the first problem.
func (n NewListing) Validate() error {
	invalid := func(msg string) error {
		return common.NewUserError(msg, common.ErrInvalidListingData)
	}

	switch {
	case strings.TrimSpace(n.Name) == "":
		return invalid("please enter PG name")
	case strings.TrimSpace(n.Location) == "":
		return invalid("please enter location")
	case n.Price <= 0:
		return invalid("please enter price")
	case strings.TrimSpace(n.Owner) == "":
		return invalid("please enter owner name")
	case strings.TrimSpace(n.Phone) == "":
		return invalid("please enter phone number")
	case countDigits(n.Phone) < minPhoneDigits:
		return invalid("please enter valid phone number")
	case n.Distance < 0:
		return invalid("distance cannot be negative")
	}

	if strings.TrimSpace(n.Gender) != "" {
		if _, err := model.ParseListingGender(n.Gender); err != nil {
			return common.NewUserError("gender must be Male, Female or Co-ed", fmt.Errorf("%w: %w", common.ErrInvalidListingData, err))
		}
	}
	return nil
}

// AddListing validates the form, stores the listing and returns it.
// When publisher is non-nil the listing is first published there and keeps the id it assigns.
func (c *Catalog) AddListing(ctx context.Context, in NewListing, publisher service.ListingPublisher) (model.Listing, error) {
	if err := in.Validate(); err != nil {
		return model.Listing{}, err
	}

	gender := model.GenderCoed
	if strings.TrimSpace(in.Gender) != "" {
		gender, _ = model.ParseListingGender(in.Gender)
	}

	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	listing := model.Listing{
		ID:           c.newID(),
		Name:         strings.TrimSpace(in.Name),
		Location:     strings.TrimSpace(in.Location),
		Description:  strings.TrimSpace(in.Description),
		Owner:        strings.TrimSpace(in.Owner),
		Contact:      strings.TrimSpace(in.Phone),
		Gender:       gender,
		Price:        in.Price,
		FoodIncluded: in.FoodIncluded,
		Distance:     in.Distance,
		Amenities:    amenities,
		Images:       images,
		Rating:       DefaultRating,
		CreatedAt:    c.now().UTC(),
	}

	if publisher != nil {
		id, err := publisher.AddListing(ctx, listing)
		if err != nil {
			return model.Listing{}, fmt.Errorf("failed to publish listing: %w", err)
		}
		listing.ID = id
	}

	if err := c.store.SaveListings(ctx, []model.Listing{listing}); err != nil {
		return model.Listing{}, fmt.Errorf("failed to save listing: %w", err)
	}

	slog.Info("Added listing", "id", listing.ID, "name", listing.Name, "published", publisher != nil)
	return listing, nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
