package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveListings_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	want := model.Listing{
		ID:           "1",
		Name:         "Sunrise PG",
		Location:     "Sector 15, Chandigarh",
		Description:  "Well-maintained PG",
		Owner:        "Raj Kumar",
		Contact:      "+91 98765 43210",
		Gender:       model.GenderMale,
		Price:        8000,
		FoodIncluded: true,
		Distance:     2.5,
		Amenities:    []string{"WiFi", "AC"},
		Images:       []string{"a.jpg"},
		Rating:       4.5,
		Verified:     true,
	}
	require.NoError(t, store.SaveListings(ctx, []model.Listing{want}))

	got, err := store.GetListing(ctx, "1")
	require.NoError(t, err)

	assert.True(t, got.CreatedAt.IsZero())
	got.CreatedAt = want.CreatedAt
	assert.Equal(t, want, *got)
}

func TestSaveListings_Upsert(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveListings(ctx, []model.Listing{testListing("a", 5000), testListing("b", 6000)}))

	updated := testListing("a", 5500)
	updated.Name = "Renamed"
	require.NoError(t, store.SaveListings(ctx, []model.Listing{updated}))

	count, err := store.CountListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.GetListing(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 5500, got.Price)

	all, err := store.GetListings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID, "an update keeps the original position")
}

func TestSaveListings_EmptyIsNoop(t *testing.T) {
	store := createTestStorage(t)
	require.NoError(t, store.SaveListings(context.Background(), nil))
	require.NoError(t, store.SaveListings(context.Background(), []model.Listing{}))
}

func TestSaveListings_RejectsBatchAtomically(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	bad := testListing("bad", -10)
	err := store.SaveListings(ctx, []model.Listing{testListing("ok", 1000), bad})
	require.ErrorIs(t, err, ErrInvalidListing)

	count, err := store.CountListings(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetListings_Order(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	early := testListing("early", 1000)
	early.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := testListing("late", 1000)
	late.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveListings(ctx, []model.Listing{
		late,
		testListing("undated-1", 1000),
		early,
		testListing("undated-2", 1000),
	}))

	all, err := store.GetListings(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(all))
	for _, l := range all {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"undated-1", "undated-2", "early", "late"}, ids)
}

func TestGetListings_EmptyIsNotNil(t *testing.T) {
	store := createTestStorage(t)

	all, err := store.GetListings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGetListing_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteListing(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveListings(ctx, []model.Listing{testListing("a", 1000)}))
	require.NoError(t, store.DeleteListing(ctx, "a"))

	_, err := store.GetListing(ctx, "a")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = store.DeleteListing(ctx, "a")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListings_ValidatesArguments(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	//nolint:staticcheck // exercising nil context validation
	_, err := store.GetListings(nil)
	assert.ErrorIs(t, err, ErrNilContext)

	_, err = store.GetListing(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)

	err = store.DeleteListing(ctx, " ")
	assert.ErrorIs(t, err, ErrEmptyString)
}
