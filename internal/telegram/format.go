package telegram

import (
	"fmt"
	"strings"

	"ai-travel-buddy/internal/travel"
)

func formatItinerary(it *travel.Itinerary) string {
	if it == nil {
		return "No itinerary yet."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗺 *%s*\n%s → %s\n", it.Destination, it.StartDate, it.EndDate))
	for _, day := range it.Days {
		sb.WriteString(fmt.Sprintf("\n*Day %d — %s*\n", day.DayNumber, day.Date))
		for _, act := range day.Activities {
			sb.WriteString(fmt.Sprintf("• %s–%s %s (%s, €%.0f)\n",
				act.StartTime, act.EndTime, act.Title, act.Category, act.CostEstimate))
		}
	}
	return sb.String()
}

func formatTrips(trips []travel.Trip) string {
	if len(trips) == 0 {
		return "No trips yet. Use /plan to create one."
	}

	var sb strings.Builder
	sb.WriteString("*Your trips*\n")
	for _, t := range trips {
		sample := ""
		if t.IsSample {
			sample = " (sample)"
		}
		sb.WriteString(fmt.Sprintf("• %s — %s to %s%s\n  `%s`\n",
			t.Destination, t.StartDate, t.EndDate, sample, t.ID))
	}
	return sb.String()
}

func formatAlerts(alerts []travel.Alert) string {
	if len(alerts) == 0 {
		return "No disruption alerts. ✅"
	}

	var sb strings.Builder
	sb.WriteString("⚠️ *Disruption alerts*\n")
	for _, a := range alerts {
		sb.WriteString(fmt.Sprintf("\n*%s/%s* (%s)\n%s\n`%s`\n", a.Category, a.Type, a.Severity, a.Message, a.ID))
	}
	sb.WriteString("\nUse /disrupt <alert-id> to find alternatives.")
	return sb.String()
}

func formatAlternatives(alternatives []travel.Activity) string {
	var sb strings.Builder
	sb.WriteString("Here are some alternatives:\n")
	for i, alt := range alternatives {
		sb.WriteString(fmt.Sprintf("\n%d. *%s* (%s–%s)\n%s\n", i+1, alt.Title, alt.StartTime, alt.EndTime, alt.Description))
	}
	return sb.String()
}

func formatSafety(destination string, info travel.SafetyInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🛡 *Safety in %s*\n", destination))
	if info.Neighborhood != "" {
		sb.WriteString(fmt.Sprintf("Area: %s\n", info.Neighborhood))
	}
	sb.WriteString(fmt.Sprintf("Safety score: %d/100\n\n%s\n", info.Score, info.Summary))
	if info.Recommendation != "" {
		sb.WriteString("\n" + info.Recommendation + "\n")
	}
	sb.WriteString(fmt.Sprintf("\n*Emergency numbers*\nPolice: %s | Ambulance: %s | Fire: %s\n",
		info.EmergencyContacts.Police, info.EmergencyContacts.Ambulance, info.EmergencyContacts.Fire))
	return sb.String()
}

func formatInspirations(inspirations []travel.TripInspiration) string {
	if len(inspirations) == 0 {
		return "No inspirations right now. Try again later."
	}

	var sb strings.Builder
	sb.WriteString("🌍 *Where to next?*\n")
	for _, ins := range inspirations {
		sb.WriteString(fmt.Sprintf("\n*%s*\n%s\n", ins.Destination, ins.Description))
	}
	return sb.String()
}
