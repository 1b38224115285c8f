package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_SaveGetDelete(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	want := model.FilterCriteria{
		Gender:       model.GenderFemale,
		SearchQuery:  "pune",
		MaxRent:      9000,
		Distance:     3,
		FoodIncluded: true,
	}
	require.NoError(t, store.SaveCriteria(ctx, "active", want))

	got, err := store.GetCriteria(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	want.MaxRent = 12000
	want.FoodIncluded = false
	require.NoError(t, store.SaveCriteria(ctx, "active", want))
	got, err = store.GetCriteria(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	require.NoError(t, store.DeleteCriteria(ctx, "active"))
	_, err = store.GetCriteria(ctx, "active")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.DeleteCriteria(ctx, "active"), "deleting twice is fine")
}

func TestSaveCriteria_EmptyGenderStoredAsAll(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCriteria(ctx, "p", model.FilterCriteria{MaxRent: 5000, Distance: 2}))
	got, err := store.GetCriteria(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, model.GenderAll, got.Gender)
}

func TestSaveCriteria_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		preset   string
		criteria model.FilterCriteria
		wantErr  error
	}{
		{name: "empty name", preset: "", criteria: model.DefaultCriteria(), wantErr: ErrEmptyString},
		{name: "co-ed is not a criteria gender", preset: "p", criteria: model.FilterCriteria{Gender: model.GenderCoed}, wantErr: common.ErrInvalidCriteria},
		{name: "negative rent", preset: "p", criteria: model.FilterCriteria{MaxRent: -1}, wantErr: common.ErrInvalidCriteria},
		{name: "negative distance", preset: "p", criteria: model.FilterCriteria{Distance: -1}, wantErr: common.ErrInvalidCriteria},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveCriteria(ctx, tt.preset, tt.criteria)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
