package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
)

const listingColumns = `id, name, location, description, owner, contact, gender, price,
	food_included, distance, amenities, images, rating, verified, created_at`

// SaveListings inserts or updates listings in a single transaction.
// An empty batch is a no-op.
func (s *SQLiteStorage) SaveListings(ctx context.Context, listings []model.Listing) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(listings) == 0 {
		return nil
	}
	if err := validateListings(listings); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveListingsTx(ctx, tx, listings)
	})
}

func (s *SQLiteStorage) saveListingsTx(ctx context.Context, tx *sql.Tx, listings []model.Listing) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO listings (`+listingColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			description = excluded.description,
			owner = excluded.owner,
			contact = excluded.contact,
			gender = excluded.gender,
			price = excluded.price,
			food_included = excluded.food_included,
			distance = excluded.distance,
			amenities = excluded.amenities,
			images = excluded.images,
			rating = excluded.rating,
			verified = excluded.verified,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC()
	for _, l := range listings {
		amenities, err := encodeTags(l.Amenities)
		if err != nil {
			return fmt.Errorf("failed to encode amenities for %s: %w", l.ID, err)
		}
		images, err := encodeTags(l.Images)
		if err != nil {
			return fmt.Errorf("failed to encode images for %s: %w", l.ID, err)
		}

		_, err = stmt.ExecContext(ctx,
			l.ID, l.Name, l.Location, l.Description, l.Owner, l.Contact, string(l.Gender), l.Price,
			l.FoodIncluded, l.Distance, amenities, images, l.Rating, l.Verified, l.CreatedAt.UTC(), now,
		)
		if err != nil {
			return fmt.Errorf("failed to save listing %s: %w", l.ID, err)
		}
	}

	return nil
}

// GetListing retrieves one listing by id, or common.ErrNotFound.
func (s *SQLiteStorage) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return l, nil
}

// GetListings returns every stored listing, oldest first, ties in insertion order.
func (s *SQLiteStorage) GetListings(ctx context.Context) ([]model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.getListingsTx(ctx, s.db)
}

func (s *SQLiteStorage) getListingsTx(ctx context.Context, q queryable) ([]model.Listing, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	listings := []model.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}
	return listings, nil
}

// DeleteListing removes a listing, or returns common.ErrNotFound.
func (s *SQLiteStorage) DeleteListing(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("listing %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// CountListings returns the number of stored listings.
func (s *SQLiteStorage) CountListings(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(row scanner) (*model.Listing, error) {
	var (
		l         model.Listing
		gender    string
		amenities string
		images    string
	)

	err := row.Scan(
		&l.ID, &l.Name, &l.Location, &l.Description, &l.Owner, &l.Contact, &gender, &l.Price,
		&l.FoodIncluded, &l.Distance, &amenities, &images, &l.Rating, &l.Verified, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Gender = model.Gender(gender)
	if l.Amenities, err = decodeTags(amenities); err != nil {
		return nil, fmt.Errorf("listing %s amenities: %w", l.ID, err)
	}
	if l.Images, err = decodeTags(images); err != nil {
		return nil, fmt.Errorf("listing %s images: %w", l.ID, err)
	}
	return &l, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTags(s string) ([]string, error) {
	tags := []string{}
	if s == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
