// Package preset is the static catalog of default checklists per trip mode.
// It is a pure lookup table: materializing a preset into a live document
// (including id assignment) is the store's job.
package preset

import (
	"strings"

	"packlist/internal/model"
)

// FallbackCategoryID is present in every preset and is where repaired items
// with dangling category references get re-pointed.
const FallbackCategoryID = "misc"

// Default is the trip mode used whenever a mode key is absent or unknown.
const Default = model.DefaultTripMode

// Template is an item blueprint. Templates carry no id; ids are assigned
// fresh every time a document is materialized, so repeated resets can never
// collide.
type Template struct {
	Cat   string
	Name  string
	Emoji string
}

type Preset struct {
	Label string
	Cats  []model.Category
	Items []Template
}

var order = []string{"weekend", "beach", "city", "mountain", "abroad"}

var catalog = map[string]Preset{
	"weekend": {
		Label: "Weekend trip",
		Cats: []model.Category{
			{ID: "docs", Name: "Documents", Emoji: "🪪"},
			{ID: "clothes", Name: "Clothes", Emoji: "👕"},
			{ID: "toiletries", Name: "Toiletries", Emoji: "🪥"},
			{ID: "tech", Name: "Tech", Emoji: "🔌"},
			{ID: "misc", Name: "Misc", Emoji: "🎒"},
		},
		Items: []Template{
			{Cat: "docs", Name: "ID card", Emoji: "🪪"},
			{Cat: "docs", Name: "Wallet", Emoji: "👛"},
			{Cat: "clothes", Name: "T-shirts", Emoji: "👕"},
			{Cat: "clothes", Name: "Underwear"},
			{Cat: "toiletries", Name: "Toothbrush", Emoji: "🪥"},
			{Cat: "toiletries", Name: "Deodorant"},
			{Cat: "tech", Name: "Phone charger", Emoji: "🔌"},
			{Cat: "tech", Name: "Headphones", Emoji: "🎧"},
			{Cat: "misc", Name: "House keys", Emoji: "🔑"},
		},
	},
	"beach": {
		Label: "Beach",
		Cats: []model.Category{
			{ID: "docs", Name: "Documents", Emoji: "🪪"},
			{ID: "clothes", Name: "Clothes", Emoji: "👕"},
			{ID: "beach", Name: "Beach gear", Emoji: "🏖️"},
			{ID: "toiletries", Name: "Toiletries", Emoji: "🪥"},
			{ID: "misc", Name: "Misc", Emoji: "🎒"},
		},
		Items: []Template{
			{Cat: "docs", Name: "ID card", Emoji: "🪪"},
			{Cat: "clothes", Name: "Swimsuit", Emoji: "🩱"},
			{Cat: "clothes", Name: "Flip flops", Emoji: "🩴"},
			{Cat: "beach", Name: "Towel"},
			{Cat: "beach", Name: "Sunscreen", Emoji: "🧴"},
			{Cat: "beach", Name: "Sunglasses", Emoji: "🕶️"},
			{Cat: "beach", Name: "Beach umbrella", Emoji: "⛱️"},
			{Cat: "toiletries", Name: "After-sun lotion"},
			{Cat: "misc", Name: "Book", Emoji: "📖"},
			{Cat: "misc", Name: "Water bottle", Emoji: "💧"},
		},
	},
	"city": {
		Label: "City break",
		Cats: []model.Category{
			{ID: "docs", Name: "Documents", Emoji: "🪪"},
			{ID: "clothes", Name: "Clothes", Emoji: "👕"},
			{ID: "tech", Name: "Tech", Emoji: "🔌"},
			{ID: "toiletries", Name: "Toiletries", Emoji: "🪥"},
			{ID: "misc", Name: "Misc", Emoji: "🎒"},
		},
		Items: []Template{
			{Cat: "docs", Name: "ID card", Emoji: "🪪"},
			{Cat: "docs", Name: "Travel tickets", Emoji: "🎫"},
			{Cat: "clothes", Name: "Comfortable shoes", Emoji: "👟"},
			{Cat: "clothes", Name: "Jacket", Emoji: "🧥"},
			{Cat: "tech", Name: "Phone charger", Emoji: "🔌"},
			{Cat: "tech", Name: "Power bank", Emoji: "🔋"},
			{Cat: "tech", Name: "Camera", Emoji: "📷"},
			{Cat: "toiletries", Name: "Toothbrush", Emoji: "🪥"},
			{Cat: "misc", Name: "Day pack", Emoji: "🎒"},
			{Cat: "misc", Name: "Umbrella", Emoji: "☂️"},
		},
	},
	"mountain": {
		Label: "Mountain",
		Cats: []model.Category{
			{ID: "gear", Name: "Gear", Emoji: "🥾"},
			{ID: "clothes", Name: "Clothes", Emoji: "🧥"},
			{ID: "food", Name: "Food & water", Emoji: "🥤"},
			{ID: "safety", Name: "Safety", Emoji: "⛑️"},
			{ID: "misc", Name: "Misc", Emoji: "🎒"},
		},
		Items: []Template{
			{Cat: "gear", Name: "Hiking boots", Emoji: "🥾"},
			{Cat: "gear", Name: "Backpack", Emoji: "🎒"},
			{Cat: "gear", Name: "Trekking poles"},
			{Cat: "clothes", Name: "Rain jacket", Emoji: "🧥"},
			{Cat: "clothes", Name: "Warm layer"},
			{Cat: "food", Name: "Water bottle", Emoji: "💧"},
			{Cat: "food", Name: "Trail snacks", Emoji: "🥜"},
			{Cat: "safety", Name: "First aid kit", Emoji: "⛑️"},
			{Cat: "safety", Name: "Headlamp", Emoji: "🔦"},
			{Cat: "misc", Name: "Map", Emoji: "🗺️"},
		},
	},
	"abroad": {
		Label: "Abroad",
		Cats: []model.Category{
			{ID: "docs", Name: "Documents", Emoji: "🛂"},
			{ID: "money", Name: "Money", Emoji: "💳"},
			{ID: "clothes", Name: "Clothes", Emoji: "👕"},
			{ID: "health", Name: "Health", Emoji: "💊"},
			{ID: "tech", Name: "Tech", Emoji: "🔌"},
			{ID: "misc", Name: "Misc", Emoji: "🎒"},
		},
		Items: []Template{
			{Cat: "docs", Name: "Passport", Emoji: "🛂"},
			{Cat: "docs", Name: "Travel insurance"},
			{Cat: "docs", Name: "Boarding passes", Emoji: "🎫"},
			{Cat: "money", Name: "Credit card", Emoji: "💳"},
			{Cat: "money", Name: "Local currency", Emoji: "💵"},
			{Cat: "clothes", Name: "Outfits per day", Emoji: "👕"},
			{Cat: "health", Name: "Medication", Emoji: "💊"},
			{Cat: "tech", Name: "Plug adapter", Emoji: "🔌"},
			{Cat: "tech", Name: "Phone charger"},
			{Cat: "misc", Name: "Travel pillow", Emoji: "💤"},
		},
	},
}

// Keys returns the known mode keys in display order.
func Keys() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

func Known(key string) bool {
	_, ok := catalog[key]
	return ok
}

// Normalize maps arbitrary input to a known mode key, falling back to the
// default mode. It never fails.
func Normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if Known(key) {
		return key
	}
	return Default
}

// Lookup returns the preset for key, or the default preset for unknown keys.
// The returned value shares no slices with the catalog.
func Lookup(key string) Preset {
	p, ok := catalog[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		p = catalog[Default]
	}
	out := Preset{Label: p.Label}
	out.Cats = make([]model.Category, len(p.Cats))
	copy(out.Cats, p.Cats)
	out.Items = make([]Template, len(p.Items))
	copy(out.Items, p.Items)
	return out
}

func init() {
	if !Known(Default) {
		panic("preset: default trip mode missing from catalog")
	}
	for key, p := range catalog {
		found := false
		for _, c := range p.Cats {
			if c.ID == FallbackCategoryID {
				found = true
				break
			}
		}
		if !found {
			panic("preset: " + key + " lacks the fallback category")
		}
	}
}
