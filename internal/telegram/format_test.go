package telegram

import (
	"strings"
	"testing"

	"ai-travel-buddy/internal/travel"
)

func TestFormatItinerary(t *testing.T) {
	trip := travel.SampleTrip()
	out := formatItinerary(trip.Itinerary)

	if !strings.Contains(out, "Paris, France") {
		t.Error("Expected the destination in the header")
	}
	if !strings.Contains(out, "Day 1") || !strings.Contains(out, "Day 3") {
		t.Error("Expected every day to be listed")
	}
	if !strings.Contains(out, "Louvre Museum") {
		t.Error("Expected activities to be listed")
	}

	if got := formatItinerary(nil); got != "No itinerary yet." {
		t.Errorf("Unexpected nil-itinerary message %q", got)
	}
}

func TestFormatTrips(t *testing.T) {
	out := formatTrips([]travel.Trip{travel.SampleTrip()})
	if !strings.Contains(out, "(sample)") {
		t.Error("Expected the sample trip to be marked")
	}
	if !strings.Contains(out, "trip-paris-sample") {
		t.Error("Expected the trip id for /open")
	}

	if got := formatTrips(nil); !strings.Contains(got, "/plan") {
		t.Errorf("Expected the empty state to point at /plan, got %q", got)
	}
}

func TestFormatAlerts(t *testing.T) {
	alerts := []travel.Alert{{
		ID:       "alert-1",
		Category: travel.AlertItinerary,
		Type:     travel.AlertClosure,
		Severity: travel.SeverityHigh,
		Message:  "Museum closed by strike.",
	}}
	out := formatAlerts(alerts)
	if !strings.Contains(out, "alert-1") || !strings.Contains(out, "Museum closed by strike.") {
		t.Errorf("Expected alert id and message, got %q", out)
	}
	if !strings.Contains(out, "/disrupt") {
		t.Error("Expected the follow-up hint")
	}

	if got := formatAlerts(nil); !strings.Contains(got, "No disruption alerts") {
		t.Errorf("Unexpected empty state %q", got)
	}
}

func TestFormatAlternatives(t *testing.T) {
	out := formatAlternatives([]travel.Activity{
		{Title: "Local Museum", StartTime: "10:00", EndTime: "12:00", Description: "Nearby."},
		{Title: "Riverside Walk", StartTime: "10:00", EndTime: "12:00", Description: "Scenic."},
	})
	if !strings.Contains(out, "1. *Local Museum*") || !strings.Contains(out, "2. *Riverside Walk*") {
		t.Errorf("Expected numbered alternatives, got %q", out)
	}
}

func TestFormatSafety(t *testing.T) {
	info := travel.SafetyInfo{
		Neighborhood:   "Le Marais",
		Score:          82,
		Summary:        "Generally safe.",
		Recommendation: "Watch for pickpockets near landmarks.",
		EmergencyContacts: travel.EmergencyContacts{
			Police: "17", Ambulance: "15", Fire: "18",
		},
	}
	out := formatSafety("Paris, France", info)
	for _, want := range []string{"Paris, France", "Le Marais", "82/100", "Generally safe.", "17", "15", "18"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in safety output, got %q", want, out)
		}
	}
}

func TestFormatInspirations(t *testing.T) {
	out := formatInspirations([]travel.TripInspiration{
		{Destination: "Kyoto, Japan", Description: "Temples and gardens."},
	})
	if !strings.Contains(out, "Kyoto, Japan") {
		t.Errorf("Expected the destination, got %q", out)
	}

	if got := formatInspirations(nil); !strings.Contains(got, "Try again later") {
		t.Errorf("Unexpected empty state %q", got)
	}
}
