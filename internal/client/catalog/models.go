package catalog

// Destination is one record of data/destinations.json.
type Destination struct {
	DestinationID any                `json:"destinationId,omitempty"`
	Name          string             `json:"name"`
	Card          DestinationCardDoc `json:"card"`
	Details       *Details           `json:"details,omitempty"`
}

type DestinationCardDoc struct {
	ShortDescription string `json:"shortDescription,omitempty"`
	Image            string `json:"image,omitempty"`
}

// Details is the detail page of a destination.
type Details struct {
	Title           string    `json:"title,omitempty"`
	HeroDescription string    `json:"heroDescription,omitempty"`
	CTA             any       `json:"cta,omitempty"`
	Overview        Overview  `json:"overview"`
	QuickFacts      any       `json:"quickFacts,omitempty"`
	Location        *Location `json:"location,omitempty"`
	Highlights      []any     `json:"highlights,omitempty"`
	Images          Images    `json:"images"`
}

type Overview struct {
	Title   string   `json:"title,omitempty"`
	Content []string `json:"content,omitempty"`
}

type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	MapURL  string `json:"mapUrl,omitempty"`
}

type Images struct {
	HeroImage string   `json:"heroImage,omitempty"`
	Gallery   []string `json:"gallery,omitempty"`
}

// DestinationCard is what the destination list shows.
type DestinationCard struct {
	DestinationID any
	Slug          string
	Title         string
	Subtitle      string
	ImageURL      string
}

type Governorate struct {
	Name       string `json:"name"`
	ShortDesc  string `json:"shortDesc,omitempty"`
	Icon       string `json:"icon,omitempty"`
	ColorClass string `json:"colorClass,omitempty"`
}

// Guide is one record of data/guides.json.
type Guide struct {
	ID      any          `json:"id,omitempty"`
	Slug    string       `json:"slug,omitempty"`
	Card    GuideCard    `json:"card"`
	Filters GuideFilters `json:"filters"`
}

type GuideCard struct {
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
	ReviewsCount   int     `json:"reviewsCount,omitempty"`
	Specialization string  `json:"specialization,omitempty"`
	PricePerHour   float64 `json:"pricePerHour,omitempty"`
}

type GuideFilters struct {
	ServiceLocations []string `json:"serviceLocations,omitempty"`
}
