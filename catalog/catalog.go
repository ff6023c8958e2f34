package catalog

import "nutribook/models"

// nutritionists is the static catalog served to clients. Profiles are
// maintained here rather than in the document store; booked appointments keep
// their own snapshot of name and price.
var nutritionists = []models.Nutritionist{
	{
		ID:              "1",
		Name:            "Dr. Vamsi Krishna",
		Specialty:       "Weight Management",
		YearsExperience: 8,
		PricePerHour:    85,
		Rating:          4.8,
		Bio:             "Dr. Vamsi Krishna is a certified nutritionist with 8 years of experience in weight management. He has guided numerous clients in achieving sustainable weight loss and metabolic health through customized diet plans.",
		Education:       "Ph.D. in Nutritional Sciences, All India Institute of Medical Sciences (AIIMS)",
		Availability:    []string{"Monday", "Tuesday", "Thursday", "Friday"},
	},
	{
		ID:              "2",
		Name:            "Harshil R",
		Specialty:       "Sports Nutrition",
		YearsExperience: 6,
		PricePerHour:    75,
		Rating:          4.6,
		Bio:             "Harshil R is a sports nutrition expert who works with athletes to enhance performance and recovery through science-backed dietary strategies. His meal plans are designed to optimize energy and endurance.",
		Education:       "M.Sc. in Sports Nutrition, National Institute of Nutrition (NIN), Hyderabad",
		Availability:    []string{"Monday", "Wednesday", "Friday", "Saturday"},
	},
	{
		ID:              "3",
		Name:            "Dr. Praveen",
		Specialty:       "Digestive Health",
		YearsExperience: 10,
		PricePerHour:    90,
		Rating:          4.9,
		Bio:             "Dr. Praveen specializes in gut health and digestive disorders. With a decade of experience, he helps patients manage conditions like IBS, acidity, and food intolerances through tailored nutrition plans.",
		Education:       "M.D. in Gastroenterology, Postgraduate Institute of Medical Education and Research (PGIMER), Chandigarh",
		Availability:    []string{"Tuesday", "Wednesday", "Thursday", "Saturday"},
	},
	{
		ID:              "4",
		Name:            "Sathwik",
		Specialty:       "Plant-Based Nutrition",
		YearsExperience: 5,
		PricePerHour:    70,
		Rating:          4.5,
		Bio:             "Sathwik is a dedicated advocate of plant-based diets. He helps clients transition to a vegetarian or vegan lifestyle while ensuring they meet all essential nutrient requirements.",
		Education:       "B.Sc. in Nutrition, Manipal Academy of Higher Education (MAHE)",
		Availability:    []string{"Monday", "Tuesday", "Thursday", "Sunday"},
	},
	{
		ID:              "5",
		Name:            "Rohith",
		Specialty:       "Clinical Nutrition",
		YearsExperience: 7,
		PricePerHour:    80,
		Rating:          4.7,
		Bio:             "Rohith specializes in clinical nutrition, working with patients managing chronic conditions like diabetes, hypertension, and heart disease. He focuses on medical nutrition therapy for better health outcomes.",
		Education:       "M.Sc. in Clinical Nutrition, Tamil Nadu Dr. M.G.R. Medical University",
		Availability:    []string{"Monday", "Wednesday", "Friday", "Saturday"},
	},
}

// All returns the full catalog in display order.
func All() []models.Nutritionist {
	out := make([]models.Nutritionist, len(nutritionists))
	copy(out, nutritionists)
	return out
}

// ByID looks up a nutritionist by catalog id.
func ByID(id string) (models.Nutritionist, bool) {
	for _, n := range nutritionists {
		if n.ID == id {
			return n, true
		}
	}
	return models.Nutritionist{}, false
}
