package models

// QuizQuestion is one step of the concierge interview. Questions and their
// options are statically defined and never mutated.
type QuizQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

// QuizOption is a selectable answer. Weight maps a vehicle ID to the integer
// score that picking this option contributes toward recommending that vehicle.
// Vehicles absent from the map contribute zero.
type QuizOption struct {
	Value  string         `json:"value"`
	Label  string         `json:"label"`
	Weight map[string]int `json:"weight"`
}
