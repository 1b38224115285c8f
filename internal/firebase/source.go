// Package firebase reads and writes PG listings in the Firestore collection the mobile app uses.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/model"
)

// DefaultCollection is the collection the app stores listings in.
const DefaultCollection = "pg_listings"

var scopes = []string{
	"https://www.googleapis.com/auth/datastore",
	"https://www.googleapis.com/auth/cloud-platform",
}

// Config holds the settings needed to reach Firestore.
type Config struct {
	ProjectID       string
	CredentialsFile string
	Collection      string
}

// Validate reports missing settings. An empty CredentialsFile means Application Default Credentials.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return fmt.Errorf("%w: firebase project id", common.ErrMissingConfig)
	}
	if c.CredentialsFile != "" {
		if _, err := os.Stat(c.CredentialsFile); err != nil {
			return fmt.Errorf("%w: credentials file %s: %w", common.ErrInvalidConfig, c.CredentialsFile, err)
		}
	}
	return nil
}

func (c Config) collection() string {
	if strings.TrimSpace(c.Collection) == "" {
		return DefaultCollection
	}
	return c.Collection
}

// Source is a Firestore-backed listing source. Each Source owns its client; call Close when done.
type Source struct {
	client     *firestore.Client
	collection string
}

// NewSource connects to Firestore using cfg.
func NewSource(ctx context.Context, cfg Config) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w: credentials file %s: %w", common.ErrInvalidConfig, cfg.CredentialsFile, err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	slog.Debug("Connected to Firestore",
		"project", cfg.ProjectID,
		"collection", cfg.collection())

	return &Source{client: client, collection: cfg.collection()}, nil
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return "firestore"
}

// FetchDocuments reads every active listing document in the collection.
// Transport failures wrap common.ErrSourceUnavailable so callers may retry them.
func (s *Source) FetchDocuments(ctx context.Context) ([]ingest.Document, error) {
	it := s.client.Collection(s.collection).Documents(ctx)
	defer it.Stop()

	var docs []ingest.Document
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: reading %s: %w", common.ErrSourceUnavailable, s.collection, err)
		}

		data := snap.Data()
		if !isActive(data) {
			slog.Debug("Skipping inactive listing", "id", snap.Ref.ID)
			continue
		}
		docs = append(docs, ingest.Document{ID: snap.Ref.ID, Data: data})
	}

	return docs, nil
}

// AddListing stores a new listing document and returns the id Firestore assigned.
func (s *Source) AddListing(ctx context.Context, listing model.Listing) (string, error) {
	ref, _, err := s.client.Collection(s.collection).Add(ctx, documentData(listing, time.Now()))
	if err != nil {
		return "", fmt.Errorf("failed to add listing: %w", err)
	}
	return ref.ID, nil
}

// Close releases the Firestore client.
func (s *Source) Close() error {
	return s.client.Close()
}

// isActive treats a missing isActive field as active; only an explicit false hides a listing.
func isActive(data map[string]any) bool {
	v, ok := data["isActive"].(bool)
	return !ok || v
}

// documentData is the document shape the add-PG form writes.
func documentData(l model.Listing, now time.Time) map[string]any {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := l.Images
	if images == nil {
		images = []string{}
	}

	created := l.CreatedAt
	if created.IsZero() {
		created = now
	}

	return map[string]any{
		"name":         l.Name,
		"location":     l.Location,
		"description":  l.Description,
		"price":        l.Price,
		"gender":       string(l.Gender),
		"foodIncluded": l.FoodIncluded,
		"distance":     l.Distance,
		"amenities":    amenities,
		"images":       images,
		"ownerName":    l.Owner,
		"phone":        l.Contact,
		"rating":       l.Rating,
		"verified":     l.Verified,
		"createdAt":    created.UTC(),
		"isActive":     true,
	}
}
