package catalog

import "apexdrive/models"

// Questions is the concierge interview. Each option's weight map is closed
// over the IDs in Vehicles; the catalog tests assert this.
var Questions = []models.QuizQuestion{
	{
		ID:       "driving_style",
		Question: "How would you describe your ideal driving experience?",
		Options: []models.QuizOption{
			{Value: "performance", Label: "Pure Performance & Speed",
				Weight: map[string]int{"911": 3, "taycan": 2, "cayenne": 1, "macan": 2, "panamera": 3}},
			{Value: "luxury", Label: "Luxury & Comfort",
				Weight: map[string]int{"911": 1, "taycan": 2, "cayenne": 3, "macan": 2, "panamera": 3}},
			{Value: "eco", Label: "Eco-Friendly & Efficient",
				Weight: map[string]int{"911": 0, "taycan": 3, "cayenne": 2, "macan": 1, "panamera": 2}},
			{Value: "versatile", Label: "Versatile & Practical",
				Weight: map[string]int{"911": 1, "taycan": 2, "cayenne": 3, "macan": 3, "panamera": 2}},
		},
	},
	{
		ID:       "usage",
		Question: "How do you plan to use your Porsche primarily?",
		Options: []models.QuizOption{
			{Value: "daily", Label: "Daily Commuting",
				Weight: map[string]int{"911": 1, "taycan": 3, "cayenne": 2, "macan": 3, "panamera": 2}},
			{Value: "weekend", Label: "Weekend Adventures",
				Weight: map[string]int{"911": 3, "taycan": 2, "cayenne": 2, "macan": 2, "panamera": 2}},
			{Value: "track", Label: "Track Days & Sports Driving",
				Weight: map[string]int{"911": 3, "taycan": 2, "cayenne": 0, "macan": 1, "panamera": 2}},
			{Value: "family", Label: "Family Transportation",
				Weight: map[string]int{"911": 0, "taycan": 2, "cayenne": 3, "macan": 3, "panamera": 3}},
		},
	},
	{
		ID:       "vehicle_size",
		Question: "What vehicle size best suits your lifestyle?",
		Options: []models.QuizOption{
			{Value: "compact", Label: "Compact & Agile",
				Weight: map[string]int{"911": 3, "taycan": 2, "cayenne": 0, "macan": 2, "panamera": 1}},
			{Value: "midsize", Label: "Midsize Versatility",
				Weight: map[string]int{"911": 1, "taycan": 2, "cayenne": 2, "macan": 3, "panamera": 2}},
			{Value: "fullsize", Label: "Full-Size Luxury",
				Weight: map[string]int{"911": 0, "taycan": 1, "cayenne": 3, "macan": 1, "panamera": 3}},
			{Value: "flexible", Label: "Size Doesn't Matter",
				Weight: map[string]int{"911": 2, "taycan": 2, "cayenne": 2, "macan": 2, "panamera": 2}},
		},
	},
	{
		ID:       "priority",
		Question: "What's most important to you in a vehicle?",
		Options: []models.QuizOption{
			{Value: "performance", Label: "Raw Performance",
				Weight: map[string]int{"911": 3, "taycan": 2, "cayenne": 1, "macan": 2, "panamera": 3}},
			{Value: "technology", Label: "Latest Technology",
				Weight: map[string]int{"911": 2, "taycan": 3, "cayenne": 2, "macan": 2, "panamera": 3}},
			{Value: "heritage", Label: "Heritage & Tradition",
				Weight: map[string]int{"911": 3, "taycan": 1, "cayenne": 1, "macan": 1, "panamera": 2}},
			{Value: "sustainability", Label: "Environmental Responsibility",
				Weight: map[string]int{"911": 0, "taycan": 3, "cayenne": 2, "macan": 1, "panamera": 2}},
		},
	},
	{
		ID:       "seating",
		Question: "What's your preferred driving position?",
		Options: []models.QuizOption{
			{Value: "low-sports", Label: "Low Sports Car Seating",
				Weight: map[string]int{"911": 3, "taycan": 3, "cayenne": 0, "macan": 0, "panamera": 2}},
			{Value: "elevated", Label: "Elevated SUV Position",
				Weight: map[string]int{"911": 0, "taycan": 0, "cayenne": 3, "macan": 3, "panamera": 0}},
			{Value: "sedan", Label: "Executive Sedan Comfort",
				Weight: map[string]int{"911": 1, "taycan": 2, "cayenne": 1, "macan": 1, "panamera": 3}},
			{Value: "flexible", Label: "No Strong Preference",
				Weight: map[string]int{"911": 2, "taycan": 2, "cayenne": 2, "macan": 2, "panamera": 2}},
		},
	},
}

// QuestionByID returns the interview step with the given ID, or nil.
func QuestionByID(id string) *models.QuizQuestion {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}

// OptionByValue returns the option with the given value on a question, or nil.
func OptionByValue(q *models.QuizQuestion, value string) *models.QuizOption {
	if q == nil {
		return nil
	}
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}
