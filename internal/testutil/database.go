// Package testutil provides shared test fixtures for rentalmate packages.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/Veraticus/rentalmate/internal/service"
	"github.com/Veraticus/rentalmate/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage  service.Storage
	t        *testing.T
	Listings []model.Listing
}

// SetupTestDB creates a new migrated in-memory database seeded with listings.
// It is closed automatically when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.SampleListings(t)...)
func SetupTestDB(t *testing.T, listings ...model.Listing) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(listings) > 0 {
		if err := store.SaveListings(ctx, listings); err != nil {
			t.Fatalf("failed to seed listings: %v", err)
		}
	}

	return &TestDB{
		Storage:  store,
		Listings: listings,
		t:        t,
	}
}

// SampleListings decodes the bundled sample documents, failing the test on any decode error.
func SampleListings(t *testing.T) []model.Listing {
	t.Helper()

	listings, errs := ingest.DecodeAll(ingest.SampleDocuments())
	if len(errs) > 0 {
		t.Fatalf("sample documents failed to decode: %v", errs)
	}
	return listings
}

// MustGetListing returns the stored listing with id or fails the test.
func (db *TestDB) MustGetListing(id string) model.Listing {
	db.t.Helper()

	l, err := db.Storage.GetListing(context.Background(), id)
	if err != nil {
		db.t.Fatalf("listing %q: %v", id, err)
	}
	return *l
}
