package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleByID(t *testing.T) {
	v := VehicleByID("panamera")
	require.NotNil(t, v)
	assert.Equal(t, "Panamera", v.Name)

	assert.Nil(t, VehicleByID("carrera-gt"))
}

func TestCenterByID(t *testing.T) {
	c := CenterByID("doncaster")
	require.NotNil(t, c)
	assert.Equal(t, "Porsche Centre Doncaster", c.Name)
	assert.True(t, c.HasDate("2025-10-18"))
	assert.False(t, c.HasDate("2025-10-14"))
	assert.True(t, c.HasTime("09:30 AM"))
	assert.False(t, c.HasTime("10:00 AM"))

	assert.Nil(t, CenterByID("geelong"))
}

// Every weight key must name a real catalog vehicle; a typo here would
// silently drop score contributions.
func TestQuizWeightsClosedOverCatalog(t *testing.T) {
	for _, q := range Questions {
		require.NotEmpty(t, q.Options, "question %s has no options", q.ID)
		for _, opt := range q.Options {
			for vehicleID := range opt.Weight {
				assert.NotNil(t, VehicleByID(vehicleID),
					"question %s option %s weights unknown vehicle %q", q.ID, opt.Value, vehicleID)
			}
			// Every option must weight the full catalog so no vehicle is
			// accidentally left out of an answer's scoring.
			assert.Len(t, opt.Weight, len(Vehicles),
				"question %s option %s does not cover the catalog", q.ID, opt.Value)
		}
	}
}

func TestQuestionLookups(t *testing.T) {
	q := QuestionByID("seating")
	require.NotNil(t, q)

	opt := OptionByValue(q, "elevated")
	require.NotNil(t, opt)
	assert.Equal(t, 3, opt.Weight["cayenne"])

	assert.Nil(t, OptionByValue(q, "standing"))
	assert.Nil(t, QuestionByID("budget"))
	assert.Nil(t, OptionByValue(nil, "elevated"))
}

func TestConciergeDateInWindow(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"today", "2025-10-01", true},
		{"mid window", "2025-10-20", true},
		{"last day", "2025-10-31", true},
		{"yesterday", "2025-09-30", false},
		{"past window", "2025-11-01", false},
		{"garbage", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConciergeDateInWindow(tt.date, now))
		})
	}
}

// The window must describe calendar days in the server's own zone: the same
// booking that is valid on a UTC clock is valid on a UTC-5 or UTC+10 one.
func TestConciergeDateInWindowTimezones(t *testing.T) {
	est := time.FixedZone("UTC-5", -5*60*60)
	aest := time.FixedZone("UTC+10", 10*60*60)

	tests := []struct {
		name string
		date string
		now  time.Time
		want bool
	}{
		{"today on a UTC-5 clock", "2025-10-01", time.Date(2025, 10, 1, 12, 0, 0, 0, est), true},
		{"last day on a UTC+10 clock", "2025-10-31", time.Date(2025, 10, 1, 12, 0, 0, 0, aest), true},
		{"today late evening UTC+10", "2025-10-01", time.Date(2025, 10, 1, 23, 30, 0, 0, aest), true},
		{"yesterday on a UTC-5 clock", "2025-09-30", time.Date(2025, 10, 1, 12, 0, 0, 0, est), false},
		{"past window on a UTC+10 clock", "2025-11-01", time.Date(2025, 10, 1, 12, 0, 0, 0, aest), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConciergeDateInWindow(tt.date, tt.now))
		})
	}
}

func TestConciergeService(t *testing.T) {
	svc := Concierge(500, 200, "AUD")
	assert.Equal(t, 500.0, svc.Deposit)
	assert.Equal(t, 200.0, svc.ServiceFee)
	assert.Equal(t, ConciergeTimes, svc.AvailableTimes)
	assert.Equal(t, ConciergeWindowDays, svc.WindowDays)

	assert.True(t, ConciergeHasTime("01:00 PM"))
	assert.False(t, ConciergeHasTime("08:00 AM"))
}
