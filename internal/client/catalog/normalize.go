package catalog

import (
	"regexp"
	"strings"
)

// DefaultImage is used for destinations without a card image.
const DefaultImage = "/images/default-destination.jpg"

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	nonSlugRun = regexp.MustCompile(`[^a-z0-9-]`)
)

// MakeSlug turns a destination name into its URL slug:
// "Khan el-Khalili Bazaar" becomes "khan-el-khalili-bazaar".
func MakeSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = spaceRun.ReplaceAllString(s, "-")
	return nonSlugRun.ReplaceAllString(s, "")
}

// NormalizeImagePath makes an image reference site-absolute. Paths relative
// to the data directory ("../images/x.jpg") are rebased on the site root.
func NormalizeImagePath(img string) string {
	if img == "" {
		return DefaultImage
	}
	if strings.HasPrefix(img, "/") {
		return img
	}
	if strings.HasPrefix(img, "../") {
		img = img[len(".."):]
	}
	return "/" + strings.TrimLeft(img, "/")
}

// ToCard maps a destination record to its list card.
func ToCard(d Destination) DestinationCard {
	return DestinationCard{
		DestinationID: d.DestinationID,
		Slug:          MakeSlug(d.Name),
		Title:         d.Name,
		Subtitle:      d.Card.ShortDescription,
		ImageURL:      NormalizeImagePath(d.Card.Image),
	}
}

// HeroImage prefers the card image, then the detail hero image, then the
// default.
func HeroImage(d Destination) string {
	if d.Card.Image != "" {
		return NormalizeImagePath(d.Card.Image)
	}
	if d.Details != nil && d.Details.Images.HeroImage != "" {
		return NormalizeImagePath(d.Details.Images.HeroImage)
	}
	return DefaultImage
}
