package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/rentalmate/internal/cli"
	"github.com/Veraticus/rentalmate/internal/config"
	"github.com/Veraticus/rentalmate/internal/firebase"
	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/service"
)

const (
	sourceFirestore = "firestore"
	sourceSample    = "sample"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch listings into the local catalog",
		Long: `Fetch every active listing from the configured source and store it locally.
Records that cannot be decoded are skipped and reported. Re-running sync
updates listings in place.`,
		RunE: runSync,
	}

	cmd.Flags().String("source", sourceFirestore, "where to fetch from (firestore, sample)")

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), true)
	defer handler.Stop()

	sourceName, _ := cmd.Flags().GetString("source")

	var src service.ListingSource
	switch sourceName {
	case sourceFirestore:
		cfg, err := config.LoadFirebaseConfig()
		if err != nil {
			return fmt.Errorf("%w (use --source sample to load the built-in listings)", err)
		}
		fs, err := firebase.NewSource(ctx, *cfg)
		if err != nil {
			return err
		}
		defer func() { _ = fs.Close() }()
		src = fs
	case sourceSample:
		src = ingest.NewStaticSource()
	default:
		return fmt.Errorf("unknown source %q: must be %s or %s", sourceName, sourceFirestore, sourceSample)
	}

	cat, store, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	report, err := cat.Sync(ctx, src)
	if report != nil {
		printReport(cmd, report)
	}
	if err != nil && handler.WasInterrupted() {
		return nil
	}
	return err
}
