package assistant

import "ai-travel-buddy/internal/travel"

const (
	translationUnavailable = "Translation unavailable."
	tipsUnavailable        = "Could not fetch cultural tips at this time."
	chatUnavailable        = "Sorry, I'm having trouble connecting right now. Please try again in a moment."
)

// fallbackItinerary is the deterministic result of a failed generation call,
// rebranded with the requested destination and dates so the UI still shows a
// plausible plan.
func fallbackItinerary(destination string, dates travel.DateRange) travel.Itinerary {
	return travel.Itinerary{
		ID:          "trip-fallback",
		Destination: destination,
		StartDate:   dates.From,
		EndDate:     dates.To,
		Days: []travel.Day{
			{
				ID:        "day-1",
				Date:      dates.From,
				DayNumber: 1,
				Activities: []travel.Activity{
					{
						ID:           "act-1",
						Title:        "Arrival & Check-in",
						Description:  "Arrive, head to the city center and check into your hotel.",
						Category:     travel.CategoryHiddenGem,
						StartTime:    "14:00",
						EndTime:      "16:00",
						Location:     travel.Location{Lat: 48.8566, Lng: 2.3522, Address: "City Center"},
						CostEstimate: 30,
					},
				},
			},
		},
	}
}

func fallbackChatMessage() travel.Message {
	return travel.Message{
		ID:      newMessageID(),
		Role:    travel.RoleAssistant,
		Content: chatUnavailable,
	}
}

func fallbackAlternatives(disrupted travel.Activity) []travel.Activity {
	return []travel.Activity{
		{
			ID:           "alt-1",
			Title:        "Local Museum",
			Description:  "Explore a nearby museum with rich collections.",
			Category:     travel.CategoryMuseum,
			StartTime:    disrupted.StartTime,
			EndTime:      disrupted.EndTime,
			Location:     travel.Location{Address: "City Center"},
			CostEstimate: 15,
		},
		{
			ID:           "alt-2",
			Title:        "Riverside Walk",
			Description:  "Scenic walk with views and cafes.",
			Category:     travel.CategoryOutdoor,
			StartTime:    disrupted.StartTime,
			EndTime:      disrupted.EndTime,
			Location:     travel.Location{Address: "Riverside"},
			CostEstimate: 0,
		},
	}
}

func fallbackSafetyInfo() travel.SafetyInfo {
	return travel.SafetyInfo{
		Neighborhood:   "Unavailable",
		Score:          0,
		Summary:        "Could not retrieve safety information at this time.",
		Recommendation: "Always be aware of your surroundings and keep your valuables secure.",
		EmergencyContacts: travel.EmergencyContacts{
			Police:    "N/A",
			Ambulance: "N/A",
			Fire:      "N/A",
		},
	}
}

// mockInspirations is the fixed destination list shown when the inspiration
// lookup fails.
func mockInspirations() []travel.TripInspiration {
	return []travel.TripInspiration{
		{Destination: "Kyoto, Japan", Description: "Ancient temples, serene gardens, and vibrant geisha districts.", ImageURL: "https://images.unsplash.com/photo-1524413840807-0c3cb6fa808d?q=80&w=2070&auto=format&fit=crop"},
		{Destination: "Amalfi Coast, Italy", Description: "Dramatic cliffs, pastel-colored villages, and sparkling blue waters.", ImageURL: "https://images.unsplash.com/photo-1533105079780-52b9be462077?q=80&w=2070&auto=format&fit=crop"},
		{Destination: "Reykjavik, Iceland", Description: "Stunning natural wonders, from the Northern Lights to volcanic landscapes.", ImageURL: "https://images.unsplash.com/photo-1500051638674-ff996a0ec29e?q=80&w=2070&auto=format&fit=crop"},
		{Destination: "Medellín, Colombia", Description: "A city of eternal spring, known for its innovation and vibrant culture.", ImageURL: "https://images.unsplash.com/photo-1588622485547-2479f6a275b2?q=80&w=2070&auto=format&fit=crop"},
	}
}
