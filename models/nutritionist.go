package models

// Nutritionist is a catalog entry for a bookable nutrition expert.
// Catalog entries are static for the lifetime of the process; appointments
// keep their own denormalized copy of the fields they need.
type Nutritionist struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	YearsExperience int      `json:"yearsExperience"`
	PricePerHour    float64  `json:"pricePerHour"`
	Rating          float64  `json:"rating"`
	Bio             string   `json:"bio"`
	Education       string   `json:"education"`
	Availability    []string `json:"availability"` // weekday names, e.g. "Monday"
}

// AvailableOn reports whether the nutritionist takes appointments on the
// given weekday name.
func (n Nutritionist) AvailableOn(weekday string) bool {
	for _, day := range n.Availability {
		if day == weekday {
			return true
		}
	}
	return false
}
