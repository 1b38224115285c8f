package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/rentalmate/internal/catalog"
	"github.com/Veraticus/rentalmate/internal/cli"
	"github.com/Veraticus/rentalmate/internal/config"
	"github.com/Veraticus/rentalmate/internal/firebase"
	"github.com/Veraticus/rentalmate/internal/ingest"
	"github.com/Veraticus/rentalmate/internal/model"
	"github.com/Veraticus/rentalmate/internal/service"
)

func listingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "listings",
		Aliases: []string{"pgs"},
		Short:   "Browse and manage the local listing catalog",
	}

	cmd.AddCommand(listingsListCmd())
	cmd.AddCommand(listingsShowCmd())
	cmd.AddCommand(listingsAddCmd())
	cmd.AddCommand(listingsImportCmd())
	cmd.AddCommand(listingsDeleteCmd())

	return cmd
}

// listingJSON is the --json shape of a listing.
type listingJSON struct {
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Location     string     `json:"location"`
	Description  string     `json:"description,omitempty"`
	Owner        string     `json:"ownerName,omitempty"`
	Contact      string     `json:"phone,omitempty"`
	Gender       string     `json:"gender"`
	Amenities    []string   `json:"amenities"`
	Images       []string   `json:"images"`
	Price        int        `json:"price"`
	Distance     float64    `json:"distance"`
	Rating       float64    `json:"rating"`
	FoodIncluded bool       `json:"foodIncluded"`
	Verified     bool       `json:"verified"`
}

func toListingJSON(l model.Listing) listingJSON {
	out := listingJSON{
		ID:           l.ID,
		Name:         l.Name,
		Location:     l.Location,
		Description:  l.Description,
		Owner:        l.Owner,
		Contact:      l.Contact,
		Gender:       string(l.Gender),
		Amenities:    l.Amenities,
		Images:       l.Images,
		Price:        l.Price,
		Distance:     l.Distance,
		Rating:       l.Rating,
		FoodIncluded: l.FoodIncluded,
		Verified:     l.Verified,
	}
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if !l.CreatedAt.IsZero() {
		created := l.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

func listingsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings matching the active filters",
		Long: `List the listings that match the saved filters. Any filter flag given here
overrides the saved value for this run only; use "filters set" to keep it.`,
		RunE: runListingsList,
	}

	addCriteriaFlags(cmd)
	cmd.Flags().Bool("json", false, "print results as JSON")

	return cmd
}

func runListingsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cat, store, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	active, err := cat.ActiveCriteria(ctx)
	if err != nil {
		return err
	}
	criteria, err := criteriaFromFlags(cmd, active)
	if err != nil {
		return err
	}

	results, err := cat.Search(ctx, criteria)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out := make([]listingJSON, 0, len(results))
		for _, l := range results {
			out = append(out, toListingJSON(l))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, cli.RenderCriteriaSummary(criteria, cat.ActiveCount(criteria)))
	fmt.Fprintln(w, cli.RenderResultsHeader(len(results)))
	for _, l := range results {
		fmt.Fprintln(w, cli.RenderListingCard(l))
	}
	if len(results) == 0 {
		fmt.Fprintln(w, cli.FormatInfo("No PGs match these filters. Try rentalmate filters reset."))
	}
	return nil
}

func listingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every detail of one listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cat, store, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			listing, err := cat.Listing(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderListingDetail(*listing))
			return nil
		},
	}
}

func listingsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new PG listing",
		Long: `Add a PG to the local catalog. With --remote the listing is published to
Firestore first and keeps the document id Firestore assigns.`,
		RunE: runListingsAdd,
	}

	cmd.Flags().String("name", "", "PG name")
	cmd.Flags().String("location", "", "area and city")
	cmd.Flags().String("description", "", "free-form description")
	cmd.Flags().Int("price", 0, "monthly rent in rupees")
	cmd.Flags().String("gender", "", "Male, Female or Co-ed (default Co-ed)")
	cmd.Flags().String("owner", "", "owner name")
	cmd.Flags().String("phone", "", "owner phone number")
	cmd.Flags().Bool("food", false, "food is included in the rent")
	cmd.Flags().Float64("distance", 0, "distance from college in km")
	cmd.Flags().StringArray("amenity", nil, "amenity tag (repeatable)")
	cmd.Flags().StringArray("image", nil, "image URL (repeatable)")
	cmd.Flags().Bool("remote", false, "also publish the listing to Firestore")

	return cmd
}

func runListingsAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	var in catalog.NewListing
	in.Name, _ = flags.GetString("name")
	in.Location, _ = flags.GetString("location")
	in.Description, _ = flags.GetString("description")
	in.Price, _ = flags.GetInt("price")
	in.Gender, _ = flags.GetString("gender")
	in.Owner, _ = flags.GetString("owner")
	in.Phone, _ = flags.GetString("phone")
	in.FoodIncluded, _ = flags.GetBool("food")
	in.Distance, _ = flags.GetFloat64("distance")
	in.Amenities, _ = flags.GetStringArray("amenity")
	in.Images, _ = flags.GetStringArray("image")
	remote, _ := flags.GetBool("remote")

	// Fail on the form before touching the network
	if err := in.Validate(); err != nil {
		return err
	}

	cat, store, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var publisher service.ListingPublisher
	if remote {
		cfg, err := config.LoadFirebaseConfig()
		if err != nil {
			return err
		}
		src, err := firebase.NewSource(ctx, *cfg)
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()
		publisher = src
	}

	listing, err := cat.AddListing(ctx, in, publisher)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("PG added successfully (%s)", listing.ID)))
	return nil
}

func listingsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import listings from a JSON or YAML file",
		Long: `Import listing documents from a .json or .yaml file holding a list of
documents in any of the shapes Firestore has used. Invalid records are
skipped and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			docs, err := ingest.ReadFile(config.ExpandPath(args[0]))
			if err != nil {
				return err
			}

			bar := cli.NewImportProgress(cmd.ErrOrStderr(), len(docs))
			cat, store, err := openCatalog(ctx, catalog.WithProgress(func(saved int) {
				if err := bar.Add(saved); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			}))
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			start := time.Now()
			report, err := cat.Import(ctx, docs)
			_ = bar.Finish()
			report.Source = filepath.Base(args[0])
			report.Duration = time.Since(start)

			printReport(cmd, report)
			return err
		},
	}
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a listing from the local catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cat, store, err := openCatalog(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := cat.DeleteListing(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted "+args[0]))
			return nil
		},
	}
}

// printReport summarizes a sync or import, listing the records that were skipped.
func printReport(cmd *cobra.Command, report *catalog.SyncReport) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Saved %d of %d listings from %s in %s",
		report.Saved, report.Fetched, report.Source, report.Duration.Round(time.Millisecond))))

	if report.Skipped > 0 {
		fmt.Fprintln(w, cli.FormatWarning(fmt.Sprintf("Skipped %d invalid records:", report.Skipped)))
		for _, err := range report.Errors {
			fmt.Fprintln(w, "  "+cli.SubtleStyle.Render(err.Error()))
		}
	}
}
