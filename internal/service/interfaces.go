// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Listing operations
	SaveListings(ctx context.Context, listings []model.Listing) error
	GetListing(ctx context.Context, id string) (*model.Listing, error)
	GetListings(ctx context.Context) ([]model.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	CountListings(ctx context.Context) (int, error)

	// Filter preset operations
	SaveCriteria(ctx context.Context, name string, c model.FilterCriteria) error
	GetCriteria(ctx context.Context, name string) (*model.FilterCriteria, error)
	DeleteCriteria(ctx context.Context, name string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ListingSource delivers raw listing documents, e.g. the Firestore collection or the bundled sample data.
type ListingSource interface {
	Name() string
	FetchDocuments(ctx context.Context) ([]ingest.Document, error)
}

// ListingPublisher adds a listing to a remote data source and returns the id the source assigned.
type ListingPublisher interface {
	AddListing(ctx context.Context, listing model.Listing) (string, error)
}
