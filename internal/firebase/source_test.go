package firebase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/rentalmate/internal/common"
	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	credsPath := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(credsPath, []byte(`{}`), 0o600))

	tests := []struct {
		wantErr error
		name    string
		cfg     Config
	}{
		{name: "project and ADC", cfg: Config{ProjectID: "rentalmate"}},
		{name: "project and credentials file", cfg: Config{ProjectID: "rentalmate", CredentialsFile: credsPath}},
		{name: "missing project", cfg: Config{}, wantErr: common.ErrMissingConfig},
		{name: "blank project", cfg: Config{ProjectID: "  "}, wantErr: common.ErrMissingConfig},
		{
			name:    "credentials file does not exist",
			cfg:     Config{ProjectID: "rentalmate", CredentialsFile: filepath.Join(t.TempDir(), "nope.json")},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Collection(t *testing.T) {
	assert.Equal(t, DefaultCollection, Config{}.collection())
	assert.Equal(t, "staging_listings", Config{Collection: "staging_listings"}.collection())
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive(map[string]any{}))
	assert.True(t, isActive(map[string]any{"isActive": true}))
	assert.False(t, isActive(map[string]any{"isActive": false}))
	assert.True(t, isActive(map[string]any{"isActive": "yes"}), "only an explicit false hides a listing")
}

func TestDocumentData_DecodesBack(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listing := model.Listing{
		Name:         "Urban Nest PG",
		Location:     "Laxmi Nagar, Delhi",
		Price:        9500,
		Gender:       model.GenderFemale,
		FoodIncluded: true,
		Distance:     2.8,
		Amenities:    []string{"WiFi", "Kitchen"},
		Owner:        "Neha Gupta",
		Contact:      "+91 43210 98765",
		Rating:       4.0,
	}

	data := documentData(listing, now)
	assert.Equal(t, true, data["isActive"])
	assert.Equal(t, now, data["createdAt"])
	assert.Equal(t, []string{}, data["images"])

	got, err := ingest.Decode(ingest.Document{ID: "fs-1", Data: data})
	require.NoError(t, err)

	listing.ID = "fs-1"
	listing.Images = []string{}
	listing.CreatedAt = now
	assert.Equal(t, listing, got)
}
