package model

import "strings"

// Category labels an expense. The set is closed; values outside it only
// appear when they are read back from storage and are kept as-is.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryHousing   Category = "Housing"
	CategoryEducation Category = "Education"
	CategoryHealth    Category = "Health"
	CategoryLeisure   Category = "Leisure"
	CategoryOther     Category = "Other"
)

// CategoryUnknown is returned by ParseCategory for labels outside the enumeration.
const CategoryUnknown Category = ""

var categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryEducation,
	CategoryHealth,
	CategoryLeisure,
	CategoryOther,
}

var categoryIcons = map[Category]string{
	CategoryFood:      "🍔",
	CategoryTransport: "🚗",
	CategoryHousing:   "🏠",
	CategoryEducation: "📚",
	CategoryHealth:    "🏥",
	CategoryLeisure:   "🎮",
	CategoryOther:     "📦",
}

// Labels used by older exports, mapped onto the current enumeration.
var categoryAliases = map[string]Category{
	"nourriture": CategoryFood,
	"transport":  CategoryTransport,
	"logement":   CategoryHousing,
	"études":     CategoryEducation,
	"etudes":     CategoryEducation,
	"santé":      CategoryHealth,
	"sante":      CategoryHealth,
	"loisirs":    CategoryLeisure,
	"autres":     CategoryOther,
}

// Categories returns the enumeration in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a label case-insensitively. It returns
// CategoryUnknown and false when the label is not recognized.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryUnknown, false
	}
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c, true
	}
	return CategoryUnknown, false
}

// Known reports whether c is part of the enumeration.
func (c Category) Known() bool {
	_, ok := categoryIcons[c]
	return ok
}

// Icon returns the display icon, or a bullet for unknown categories.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "•"
}

func (c Category) String() string {
	return string(c)
}
