package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pyramids of Giza", "pyramids-of-giza"},
		{"  Khan el-Khalili   Bazaar ", "khan-el-khalili-bazaar"},
		{"Alexandria Library & Citadel", "alexandria-library--citadel"},
		{"Siwa\tOasis", "siwa-oasis"},
		{"Café 21", "caf-21"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeSlug(tt.in))
		})
	}
}

func TestNormalizeImagePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", DefaultImage},
		{"/images/a.jpg", "/images/a.jpg"},
		{"../images/a.jpg", "/images/a.jpg"},
		{"..//images/a.jpg", "/images/a.jpg"},
		{"images/a.jpg", "/images/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImagePath(tt.in))
		})
	}
}

func TestHeroImage(t *testing.T) {
	assert.Equal(t, DefaultImage, HeroImage(Destination{}))
	assert.Equal(t, "/h.jpg", HeroImage(Destination{Details: &Details{Images: Images{HeroImage: "h.jpg"}}}))
	assert.Equal(t, "/c.jpg", HeroImage(Destination{
		Card:    DestinationCardDoc{Image: "/c.jpg"},
		Details: &Details{Images: Images{HeroImage: "h.jpg"}},
	}))
}
