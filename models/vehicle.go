package models

// Vehicle is a static catalog entry. Catalog data is read-only at runtime.
type Vehicle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Seats       string   `json:"seats"`
	Doors       string   `json:"doors"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}
