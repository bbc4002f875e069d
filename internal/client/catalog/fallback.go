package catalog

import "slices"

// Shown when data/destinations.json cannot be loaded or is empty.
var fallbackDestinations = []DestinationCard{
	{
		Slug:     "pyramids-of-giza",
		Title:    "Pyramids of Giza",
		Subtitle: "Witness the majestic ancient wonders, a testament to pharaonic engineering and history.",
		ImageURL: "/images/destinations/pyramids-of-giza.png",
	},
	{
		Slug:     "khan-el-khalili",
		Title:    "Khan el-Khalili Bazaar",
		Subtitle: "Immerse yourself in the vibrant atmosphere of Cairo's historic marketplace, rich with crafts and spices.",
		ImageURL: "/images/destinations/khan-el-khalili.png",
	},
	{
		Slug:     "aswan-nile-cruise",
		Title:    "Aswan Nile Cruise",
		Subtitle: "Experience serene luxury along the Nile, passing ancient temples and picturesque landscapes.",
		ImageURL: "/images/destinations/aswan-nile-cruise.png",
	},
	{
		Slug:     "alexandria-library",
		Title:    "Alexandria Library & Citadel",
		Subtitle: "Explore the modern marvel of the Bibliotheca Alexandrina and the historic Qaitbay Citadel.",
		ImageURL: "/images/destinations/alexandria-library.png",
	},
	{
		Slug:     "luxor-temple",
		Title:    "Luxor Temple Complex",
		Subtitle: "Step back in time among grand pylons, statues, and obelisks of one of Egypt's most significant sites.",
		ImageURL: "/images/destinations/luxor-temple.png",
	},
	{
		Slug:     "dahab-blue-hole",
		Title:    "Dahab Blue Hole",
		Subtitle: "Dive into the stunning underwater world of the Red Sea, a paradise for snorkelers and divers.",
		ImageURL: "/images/destinations/dahab-blue-hole.png",
	},
}

// Shown when api/governorates cannot be loaded or is empty.
var fallbackGovernorates = []Governorate{
	{Name: "Giza", ShortDesc: "Home of the Great Pyramids and Sphinx.", Icon: "⛰️", ColorClass: "tileGiza"},
	{Name: "Cairo", ShortDesc: "Egypt's vibrant capital and largest city.", Icon: "🕌", ColorClass: "tileCairo"},
	{Name: "Alexandria", ShortDesc: "The historic Pearl of the Mediterranean.", Icon: "⚓", ColorClass: "tileAlexandria"},
	{Name: "Luxor", ShortDesc: `Ancient city known as the "World's Greatest Open-Air Museum."`, Icon: "☀️", ColorClass: "tileLuxor"},
	{Name: "Aswan", ShortDesc: "Scenic southern city on the Nile River, famous for its temples.", Icon: "📍", ColorClass: "tileAswan"},
	{Name: "Sharm El Sheikh", ShortDesc: "Popular Red Sea resort city known for diving and beaches.", Icon: "🌴", ColorClass: "tileSharm"},
}

// FallbackDestinations returns a copy of the built-in destination cards.
func FallbackDestinations() []DestinationCard { return slices.Clone(fallbackDestinations) }

// FallbackGovernorates returns a copy of the built-in governorates.
func FallbackGovernorates() []Governorate { return slices.Clone(fallbackGovernorates) }
