package classification

import "github.com/Veraticus/studmoney/internal/model"

// DefaultPatterns returns the built-in merchant patterns used to guess a
// category for imported bank transactions.
func DefaultPatterns() []Pattern {
	return []Pattern{
		// Housing and utilities first: rent payments often mention the bank too
		{
			Name:     "Rent",
			Category: model.CategoryHousing,
			Regex:    `\b(RENT|LOYER|LANDLORD|CROUS|RESIDENCE)\b`,
			Priority: 100,
		},
		{
			Name:     "Utilities",
			Category: model.CategoryHousing,
			Regex:    `\b(ELECTRIC\w*|ELECTRICITE|WATER|GAS\s*BILL|INTERNET|WIFI|ORANGE|MTN)\b`,
			Priority: 90,
		},

		// Education
		{
			Name:     "Tuition",
			Category: model.CategoryEducation,
			Regex:    `\b(TUITION|UNIVERSIT\w*|COLLEGE|SCOLARITE|INSCRIPTION|SCHOOL)\b`,
			Priority: 95,
		},
		{
			Name:     "Books and courses",
			Category: model.CategoryEducation,
			Regex:    `\b(BOOKSTORE|LIBRAIRIE|TEXTBOOK|UDEMY|COURSERA|PHOTOCOP\w*|PRINTING)\b`,
			Priority: 85,
		},

		// Health
		{
			Name:     "Pharmacy",
			Category: model.CategoryHealth,
			Regex:    `\b(PHARMAC\w*|DRUGSTORE|CVS|WALGREENS)\b`,
			Priority: 90,
		},
		{
			Name:     "Medical",
			Category: model.CategoryHealth,
			Regex:    `\b(CLINIC|CLINIQUE|HOSPITAL|HOPITAL|DOCTOR|DENTIST|MEDICAL)\b`,
			Priority: 90,
		},

		// Transport
		{
			Name:     "Ride hailing",
			Category: model.CategoryTransport,
			Regex:    `\b(UBER|LYFT|BOLT|YANGO|TAXI)\b`,
			Priority: 80,
		},
		{
			Name:     "Public transit",
			Category: model.CategoryTransport,
			Regex:    `\b(BUS|METRO|TRANSIT|SNCF|RATP|TRAIN|RAILWAY)\b`,
			Priority: 75,
		},
		{
			Name:     "Fuel",
			Category: model.CategoryTransport,
			Regex:    `\b(FUEL|PETROL|GASOLINE|ESSENCE|SHELL|TOTAL\s*ENERGIES|CHEVRON|EXXON)\b`,
			Priority: 75,
		},

		// Leisure
		{
			Name:     "Streaming",
			Category: model.CategoryLeisure,
			Regex:    `\b(NETFLIX|SPOTIFY|DEEZER|DISNEY|HULU|YOUTUBE|TWITCH)\b`,
			Priority: 70,
		},
		{
			Name:     "Entertainment",
			Category: model.CategoryLeisure,
			Regex:    `\b(CINEMA|THEATER|THEATRE|CONCERT|STEAM|PLAYSTATION|XBOX|GYM|FITNESS)\b`,
			Priority: 65,
		},

		// Food last: "MARKET" and "CAFE" are broad
		{
			Name:     "Restaurants and cafes",
			Category: model.CategoryFood,
			Regex:    `\b(RESTAURANT|CAFE|COFFEE|STARBUCKS|MCDONALD\w*|KFC|PIZZA\w*|BURGER|SUBWAY|CANTEEN|CANTINE|BOULANGERIE|BAKERY)\b`,
			Priority: 60,
		},
		{
			Name:     "Groceries",
			Category: model.CategoryFood,
			Regex:    `\b(GROCER\w*|SUPERMARKET|SUPERMARCHE|MARKET|CARREFOUR|AUCHAN|LIDL|ALDI|WHOLE\s*FOODS)\b`,
			Priority: 55,
		},
	}
}
