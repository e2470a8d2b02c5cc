package catalog

import "apexdrive/models"

// Vehicles is the static catalog, in recommendation tie-break order.
var Vehicles = []models.Vehicle{
	{
		ID:          "taycan",
		Name:        "Taycan",
		Title:       "The All-Electric Performer",
		Description: "Electric sports car with instant torque and exhilarating performance. Experience the future of driving with zero emissions and maximum excitement.",
		Type:        "Electric",
		Seats:       "4/5 seats",
		Doors:       "4 doors",
		Features:    []string{"Instant Torque", "Zero Emissions", "Sport Plus Mode", "0-100 km/h in 2.8s"},
		Price:       "From $158,000",
	},
	{
		ID:          "911",
		Name:        "911",
		Title:       "The Iconic Legend",
		Description: "Timeless design meets cutting-edge technology. The 911 is the quintessential sports car that defines the Porsche experience.",
		Type:        "Petrol",
		Seats:       "2+2 seats",
		Doors:       "2 doors",
		Features:    []string{"Rear Engine", "Iconic Design", "Precision Handling", "0-100 km/h in 3.4s"},
		Price:       "From $231,000",
	},
	{
		ID:          "cayenne",
		Name:        "Cayenne",
		Title:       "The Versatile Performer",
		Description: "A luxury SUV that delivers true Porsche performance. Perfect for those who need space without compromising on driving dynamics.",
		Type:        "Hybrid",
		Seats:       "5 seats",
		Doors:       "4 doors",
		Features:    []string{"Versatile", "Hybrid Efficiency", "Premium Comfort", "All-Wheel Drive"},
		Price:       "From $131,000",
	},
	{
		ID:          "macan",
		Name:        "Macan",
		Title:       "The Compact Sports SUV",
		Description: "Compact luxury SUV with sports car DNA. Combining everyday practicality with unmistakable Porsche performance and handling.",
		Type:        "Petrol",
		Seats:       "5 seats",
		Doors:       "4 doors",
		Features:    []string{"Compact Agility", "Sports Car Handling", "Premium Interior", "0-100 km/h in 4.1s"},
		Price:       "From $98,000",
	},
	{
		ID:          "panamera",
		Name:        "Panamera",
		Title:       "The Grand Tourer",
		Description: "Four-door luxury sports car that perfectly balances performance and comfort. The ultimate grand touring experience with Porsche DNA.",
		Type:        "Hybrid",
		Seats:       "4/5 seats",
		Doors:       "4 doors",
		Features:    []string{"Executive Comfort", "Hybrid Technology", "Luxury Interior", "0-100 km/h in 3.1s"},
		Price:       "From $185,000",
	},
}

// VehicleByID returns the catalog entry for the given ID, or nil.
func VehicleByID(id string) *models.Vehicle {
	for i := range Vehicles {
		if Vehicles[i].ID == id {
			return &Vehicles[i]
		}
	}
	return nil
}
