package models

// Center is a physical test-drive location with its own availability windows.
type Center struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Latitude       float64  `json:"lat"`
	Longitude      float64  `json:"lng"`
	AvailableDates []string `json:"availableDates"` // "2006-01-02"
	AvailableTimes []string `json:"availableTimes"` // e.g. "10:00 AM"
}

// HasDate reports whether the center is open on the given date.
func (c Center) HasDate(date string) bool {
	for _, d := range c.AvailableDates {
		if d == date {
			return true
		}
	}
	return false
}

// HasTime reports whether the center offers the given time slot.
func (c Center) HasTime(t string) bool {
	for _, s := range c.AvailableTimes {
		if s == t {
			return true
		}
	}
	return false
}

// ConciergeService describes the delivery offering shown alongside centers.
type ConciergeService struct {
	Deposit        float64  `json:"deposit"`
	ServiceFee     float64  `json:"serviceFee"`
	Currency       string   `json:"currency"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	AvailableAreas []string `json:"availableAreas"`
	AvailableTimes []string `json:"availableTimes"`
	WindowDays     int      `json:"windowDays"`
}
