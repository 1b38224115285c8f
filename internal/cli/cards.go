package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/rentalmate/internal/model"
)

var rupees = message.NewPrinter(language.MustParse("en-IN"))

// FormatRent renders a monthly rent such as "₹8,000/month".
func FormatRent(price int) string {
	return "₹" + rupees.Sprintf("%d", price) + "/month"
}

// FormatDistance renders a distance such as "2.5 km".
func FormatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

// GenderLabel is the label the listing cards show for a PG's gender.
func GenderLabel(g model.Gender) string {
	switch g {
	case model.GenderMale:
		return "Boys"
	case model.GenderFemale:
		return "Girls"
	case model.GenderCoed:
		return "Co-ed"
	default:
		return string(g)
	}
}

// RenderResultsHeader is the "N found" line above a result list.
func RenderResultsHeader(n int) string {
	noun := "PGs"
	if n == 1 {
		noun = "PG"
	}
	return TitleStyle.UnsetMargins().Render(fmt.Sprintf("%d %s found", n, noun))
}

// RenderListingCard renders the compact card used in result lists.
func RenderListingCard(l model.Listing) string {
	title := BoldStyle.Render(l.Name)
	if l.Verified {
		title += " " + SuccessStyle.Render(VerifiedIcon)
	}

	badges := []string{BadgeStyle.Render(GenderLabel(l.Gender))}
	if l.FoodIncluded {
		badges = append(badges, BadgeStyle.Render("Food"))
	}

	lines := []string{
		title + "  " + SubtleStyle.Render(l.ID),
		PinIcon + " " + l.Location,
		PriceStyle.Render(FormatRent(l.Price)) + "  " + strings.Join(badges, " "),
		SubtleStyle.Render(FormatDistance(l.Distance)+" from college") + "  " + WarningStyle.Render(fmt.Sprintf("%s %.1f", StarIcon, l.Rating)),
	}
	if len(l.Amenities) > 0 {
		lines = append(lines, InfoStyle.Render(strings.Join(l.Amenities, " · ")))
	}

	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderListingDetail renders every field of a listing.
func RenderListingDetail(l model.Listing) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render(fmt.Sprintf("%-12s", label)), value)
	}

	row("ID", l.ID)
	row("Location", l.Location)
	row("Rent", PriceStyle.Render(FormatRent(l.Price)))
	row("Gender", GenderLabel(l.Gender))
	row("Food", yesNo(l.FoodIncluded))
	row("Distance", FormatDistance(l.Distance)+" from college")
	row("Rating", fmt.Sprintf("%s %.1f", StarIcon, l.Rating))
	row("Verified", yesNo(l.Verified))
	row("Amenities", strings.Join(l.Amenities, ", "))
	row("Owner", l.Owner)
	row("Contact", l.Contact)
	if len(l.Images) > 0 {
		row("Images", strconv.Itoa(len(l.Images)))
		row("Cover", l.CoverImage())
	}
	if !l.CreatedAt.IsZero() {
		row("Listed", l.CreatedAt.Format("2 Jan 2006"))
	}
	if l.Description != "" {
		b.WriteString("\n" + l.Description + "\n")
	}

	return RenderBox(HomeIcon+" "+l.Name, strings.TrimRight(b.String(), "\n"))
}

// RenderCriteriaSummary describes the criteria in one line, with a badge counting active filters.
func RenderCriteriaSummary(c model.FilterCriteria, active int) string {
	parts := []string{}

	gender := c.Gender
	if gender == "" {
		gender = model.GenderAll
	}
	if gender == model.GenderAll {
		parts = append(parts, "Any gender")
	} else {
		parts = append(parts, GenderLabel(gender))
	}
	parts = append(parts, "up to "+FormatRent(c.MaxRent))
	parts = append(parts, "within "+FormatDistance(c.Distance))
	if c.FoodIncluded {
		parts = append(parts, "food included")
	}
	if q := strings.TrimSpace(c.SearchQuery); q != "" {
		parts = append(parts, fmt.Sprintf("matching %q", q))
	}

	badge := SubtleStyle.Render(FilterIcon + " no filters")
	if active > 0 {
		badge = ActiveBadgeStyle.Render(fmt.Sprintf("%s %d", FilterIcon, active))
	}

	return badge + " " + strings.Join(parts, " · ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
