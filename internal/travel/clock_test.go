package travel

import "testing"

func TestClockAdd(t *testing.T) {
	cases := []struct {
		name    string
		hhmm    string
		minutes int
		want    string
	}{
		{"simple add", "09:00", 30, "09:30"},
		{"across the hour", "09:50", 25, "10:15"},
		{"default evening slot plus buffer", "21:00", 15, "21:15"},
		{"wraps past midnight", "23:30", 90, "01:00"},
		{"wraps exactly to midnight", "23:00", 60, "00:00"},
		{"full day is identity", "13:45", 24 * 60, "13:45"},
		{"negative wraps backwards", "00:30", -60, "23:30"},
		{"zero minutes normalizes format", "9:5", 0, "09:05"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClockAdd(tc.hhmm, tc.minutes)
			if got != tc.want {
				t.Errorf("ClockAdd(%q, %d) = %q, want %q", tc.hhmm, tc.minutes, got, tc.want)
			}
		})
	}
}

func TestClockAddMalformedInputUnchanged(t *testing.T) {
	for _, bad := range []string{"", "noon", "25:00", "12:75", "12", "12:xx"} {
		if got := ClockAdd(bad, 30); got != bad {
			t.Errorf("ClockAdd(%q, 30) = %q, want input unchanged", bad, got)
		}
	}
}

func TestSampleTripIsIndependentPerCall(t *testing.T) {
	first := SampleTrip()
	first.Itinerary.Days[0].Activities[0].Title = "mutated"

	second := SampleTrip()
	if second.Itinerary.Days[0].Activities[0].Title == "mutated" {
		t.Error("SampleTrip calls share state; each call should return a fresh value")
	}
	if !second.IsSample {
		t.Error("Expected sample trip to be flagged IsSample")
	}
	if len(second.Itinerary.Days) != 3 {
		t.Errorf("Expected 3 days in sample trip, got %d", len(second.Itinerary.Days))
	}
}
