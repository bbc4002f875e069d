package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/laqtaha/internal/client/catalog"
)

// Destinations lists the destination cards.
func (a *App) Destinations(ctx context.Context) error {
	a.printHeader("Explore destinations")
	for _, c := range a.catalog.Destinations(ctx) {
		fmt.Fprintf(a.out, "  %-28s %s\n", c.Slug, c.Title)
		if c.Subtitle != "" {
			fmt.Fprintf(a.out, "  %-28s %s\n", "", c.Subtitle)
		}
	}
	return nil
}

// Destination shows the detail record of one destination.
func (a *App) Destination(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: destination <slug>")
		return nil
	}

	d, err := a.catalog.DestinationBySlug(ctx, args[0])
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(a.out, "Destination %q not found.\n", args[0])
		}
		a.log.Debug(ctx, "destination lookup failed", "slug", args[0], "error", err)
		return err
	}

	a.printHeader(d.Name)
	fmt.Fprintf(a.out, "Image: %s\n", catalog.HeroImage(*d))
	if d.Card.ShortDescription != "" {
		fmt.Fprintln(a.out, d.Card.ShortDescription)
	}
	if det := d.Details; det != nil {
		if det.HeroDescription != "" {
			fmt.Fprintln(a.out, det.HeroDescription)
		}
		if det.Overview.Title != "" {
			fmt.Fprintf(a.out, "\n%s\n", det.Overview.Title)
		}
		for _, p := range det.Overview.Content {
			fmt.Fprintf(a.out, "  %s\n", p)
		}
		if loc := det.Location; loc != nil && loc.City != "" {
			fmt.Fprintf(a.out, "Location: %s, %s\n", loc.City, loc.Country)
		}
		if n := len(det.Highlights); n > 0 {
			fmt.Fprintf(a.out, "Highlights: %d\n", n)
		}
		for _, g := range det.Images.Gallery {
			fmt.Fprintf(a.out, "  gallery: %s\n", g)
		}
	}
	return nil
}

// Refresh drops the cached catalog documents so the next listing fetches
// them again.
func (a *App) Refresh(ctx context.Context) error {
	a.catalog.Invalidate()
	fmt.Fprintln(a.out, "Catalog will be reloaded on next use.")
	return nil
}

// Governorates lists the governorate tiles.
func (a *App) Governorates(ctx context.Context) error {
	a.printHeader("Governorates")
	for _, g := range a.catalog.Governorates(ctx) {
		fmt.Fprintf(a.out, "  %s %-18s %s\n", g.Icon, g.Name, g.ShortDesc)
	}
	return nil
}

// Guides lists the local guides of a city, optionally filtered by a
// name or specialisation query. Without a city the first one is used.
func (a *App) Guides(ctx context.Context, args []string) error {
	guides := a.catalog.Guides(ctx)
	cities := catalog.Cities(guides)

	city := ""
	if len(args) > 0 {
		city = args[0]
	} else if len(cities) > 0 {
		city = cities[0]
	}
	query := ""
	if len(args) > 1 {
		query = strings.Join(args[1:], " ")
	}

	a.printHeader("Local guides in " + city)
	fmt.Fprintf(a.out, "Cities: %s\n", strings.Join(cities, ", "))

	found := catalog.FilterGuides(guides, city, query)
	if len(found) == 0 {
		fmt.Fprintf(a.out, "No guides found for %s.\n", city)
		return nil
	}
	for _, g := range found {
		fmt.Fprintf(a.out, "  %s (%s) %.1f stars, %d reviews, $%.0f / hour\n",
			g.Card.Name, g.Card.Specialization, g.Card.Rating, g.Card.ReviewsCount, g.Card.PricePerHour)
	}
	return nil
}

// printHeader prints a page title with the navigation action for the
// current session.
func (a *App) printHeader(title string) {
	fmt.Fprintf(a.out, "== %s ==  [%s]\n", title, navAction(a.sessions.Snapshot()))
}
