package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/Veraticus/rentalmate/internal/firebase"
)

// LoadFirebaseConfig loads Firestore settings from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file or RENTALMATE_ env vars)
// 2. Direct environment variables (FIREBASE_PROJECT_ID, GOOGLE_APPLICATION_CREDENTIALS)
// 3. Default values
func LoadFirebaseConfig() (*firebase.Config, error) {
	cfg := firebase.Config{
		ProjectID:       viper.GetString("firebase.project_id"),
		CredentialsFile: ExpandPath(viper.GetString("firebase.credentials_file")),
		Collection:      viper.GetString("firebase.collection"),
	}

	if cfg.ProjectID == "" {
		cfg.ProjectID = os.Getenv("FIREBASE_PROJECT_ID")
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = ExpandPath(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if cfg.Collection == "" {
		cfg.Collection = firebase.DefaultCollection
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
