package catalog

import (
	"time"

	"apexdrive/models"
)

// Centers lists the physical test-drive locations.
var Centers = []models.Center{
	{
		ID:             "melbourne",
		Name:           "Porsche Centre Melbourne",
		Address:        "420 St Kilda Road, Melbourne, VIC 3004",
		Phone:          "(03) 9820 8888",
		Latitude:       -37.8416,
		Longitude:      144.9791,
		AvailableDates: []string{"2025-10-14", "2025-10-17", "2025-10-19", "2025-10-23"},
		AvailableTimes: []string{"10:00 AM", "12:00 PM", "03:00 PM", "05:00 PM"},
	},
	{
		ID:             "brighton",
		Name:           "Porsche Centre Brighton",
		Address:        "161 Bay Street, Brighton, VIC 3186",
		Phone:          "(03) 9596 6911",
		Latitude:       -37.9071,
		Longitude:      144.9926,
		AvailableDates: []string{"2025-10-15", "2025-10-16", "2025-10-20", "2025-10-22"},
		AvailableTimes: []string{"09:00 AM", "11:00 AM", "02:00 PM", "04:00 PM"},
	},
	{
		ID:             "doncaster",
		Name:           "Porsche Centre Doncaster",
		Address:        "1060 Doncaster Road, Doncaster, VIC 3108",
		Phone:          "(03) 9848 9911",
		Latitude:       -37.7850,
		Longitude:      145.1294,
		AvailableDates: []string{"2025-10-13", "2025-10-18", "2025-10-21", "2025-10-24"},
		AvailableTimes: []string{"09:30 AM", "11:30 AM", "01:30 PM", "03:30 PM"},
	},
	{
		ID:             "approved-melbourne",
		Name:           "Porsche Approved Centre Melbourne",
		Address:        "75 O'Riordan Street, Alexandria, NSW 2015",
		Phone:          "(03) 8338 3911",
		Latitude:       -37.8172,
		Longitude:      144.9570,
		AvailableDates: []string{"2025-10-14", "2025-10-17", "2025-10-19", "2025-10-25"},
		AvailableTimes: []string{"10:00 AM", "12:30 PM", "02:30 PM", "04:30 PM"},
	},
}

// CenterByID returns the center with the given ID, or nil.
func CenterByID(id string) *models.Center {
	for i := range Centers {
		if Centers[i].ID == id {
			return &Centers[i]
		}
	}
	return nil
}

// ConciergeTimes are the fixed daily delivery slots.
var ConciergeTimes = []string{"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM"}

// ConciergeWindowDays is how far ahead concierge deliveries can be scheduled.
const ConciergeWindowDays = 30

// Concierge returns the delivery service description. Deposit and service fee
// come from configuration rather than being hard-coded here.
func Concierge(deposit, serviceFee float64, currency string) models.ConciergeService {
	return models.ConciergeService{
		Deposit:     deposit,
		ServiceFee:  serviceFee,
		Currency:    currency,
		Description: "Have your chosen Porsche delivered directly to your location. The deposit is fully refundable when you purchase the vehicle.",
		Features: []string{
			"Delivery to your location",
			"Professional concierge driver",
			"Flexible timing",
			"Real-time tracking via My Porsche App",
			"Premium experience",
		},
		AvailableAreas: []string{"Sydney Metro", "Melbourne Metro", "Brisbane Metro", "Gold Coast", "Perth Metro"},
		AvailableTimes: ConciergeTimes,
		WindowDays:     ConciergeWindowDays,
	}
}

// ConciergeHasTime reports whether t is one of the fixed delivery slots.
func ConciergeHasTime(t string) bool {
	for _, s := range ConciergeTimes {
		if s == t {
			return true
		}
	}
	return false
}

// ConciergeDateInWindow reports whether date falls inside today .. today+30d.
// The bound is evaluated against now so the window rolls forward each day.
// The candidate is parsed in now's zone so both sides of the comparison name
// the same calendar day regardless of server timezone.
func ConciergeDateInWindow(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	last := today.AddDate(0, 0, ConciergeWindowDays)
	return !d.Before(today) && !d.After(last)
}
