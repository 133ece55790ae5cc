package travel

// SampleTrip returns the bundled demo trip seeded into a fresh install so the
// app has something to show before the first generated itinerary. A new value
// is built on every call so callers can mutate it freely.
func SampleTrip() Trip {
	return Trip{
		ID:          "trip-paris-sample",
		Destination: "Paris, France",
		StartDate:   "2024-08-10",
		EndDate:     "2024-08-12",
		Status:      StatusInProgress,
		IsSample:    true,
		Itinerary: &Itinerary{
			ID:          "trip-paris-1",
			Destination: "Paris, France",
			StartDate:   "2024-08-10",
			EndDate:     "2024-08-12",
			Days: []Day{
				{
					ID:        "day-1",
					Date:      "2024-08-10",
					DayNumber: 1,
					Activities: []Activity{
						{ID: "act-1", Title: "Arrival & Check-in", Description: "Arrive at CDG, take RER B to city center, check into hotel in Le Marais.", Category: CategoryHiddenGem, StartTime: "14:00", EndTime: "16:00", Location: Location{Lat: 48.8566, Lng: 2.3522, Address: "Le Marais, Paris"}, CostEstimate: 30},
						{ID: "act-2", Title: "Louvre Museum", Description: "Explore iconic art including the Mona Lisa. Pre-book tickets to avoid long queues.", Category: CategoryMuseum, StartTime: "16:30", EndTime: "19:00", Location: Location{Lat: 48.8606, Lng: 2.3376, Address: "Rue de Rivoli, 75001 Paris"}, CostEstimate: 22},
						{ID: "act-3", Title: "Dinner at Le Bouillon Chartier", Description: "Experience classic French cuisine in a historic, bustling setting.", Category: CategoryFood, StartTime: "20:00", EndTime: "21:30", Location: Location{Lat: 48.872, Lng: 2.344, Address: "7 Rue du Faubourg Montmartre, 75009 Paris"}, CostEstimate: 25},
					},
				},
				{
					ID:        "day-2",
					Date:      "2024-08-11",
					DayNumber: 2,
					Activities: []Activity{
						{ID: "act-4", Title: "Eiffel Tower", Description: "Visit the iconic landmark. Go early to beat the crowds. Consider climbing the stairs for a unique experience.", Category: CategoryTour, StartTime: "09:00", EndTime: "11:00", Location: Location{Lat: 48.8584, Lng: 2.2945, Address: "Champ de Mars, 5 Avenue Anatole France, 75007 Paris"}, CostEstimate: 28},
						{ID: "act-5", Title: "Seine River Cruise", Description: "A relaxing boat tour offering unique views of Paris landmarks from the water.", Category: CategoryTour, StartTime: "11:30", EndTime: "12:30", Location: Location{Lat: 48.8627, Lng: 2.2876, Address: "Port de la Bourdonnais, 75007 Paris"}, CostEstimate: 18},
						{ID: "act-6", Title: "Montmartre & Sacré-Cœur", Description: "Explore the charming, artistic neighborhood and enjoy panoramic city views from the basilica.", Category: CategoryOutdoor, StartTime: "14:00", EndTime: "17:00", Location: Location{Lat: 48.8867, Lng: 2.3431, Address: "Montmartre, 75018 Paris"}, CostEstimate: 5},
						{ID: "act-7", Title: "Dinner in Montmartre", Description: "Dine at a cozy bistro in the artistic heart of Paris.", Category: CategoryFood, StartTime: "19:00", EndTime: "20:30", Location: Location{Lat: 48.8872, Lng: 2.3411, Address: "Place du Tertre, 75018 Paris"}, CostEstimate: 40},
					},
				},
				{
					ID:        "day-3",
					Date:      "2024-08-12",
					DayNumber: 3,
					Activities: []Activity{
						{ID: "act-8", Title: "Musée d'Orsay", Description: "Admire the world's largest collection of Impressionist and Post-Impressionist masterpieces in a stunning former railway station.", Category: CategoryMuseum, StartTime: "10:00", EndTime: "12:30", Location: Location{Lat: 48.8600, Lng: 2.3266, Address: "1 Rue de la Légion d'Honneur, 75007 Paris"}, CostEstimate: 16},
						{ID: "act-9", Title: "Shopping on Champs-Élysées", Description: "Stroll down the famous avenue, window shopping at luxury stores and ending at the Arc de Triomphe.", Category: CategoryShopping, StartTime: "14:00", EndTime: "16:00", Location: Location{Lat: 48.8695, Lng: 2.3075, Address: "Avenue des Champs-Élysées, 75008 Paris"}, CostEstimate: 0},
						{ID: "act-10", Title: "Departure", Description: "Head back to CDG for your flight home.", Category: CategoryHiddenGem, StartTime: "17:00", EndTime: "18:00", Location: Location{Lat: 49.0097, Lng: 2.5479, Address: "Charles de Gaulle Airport"}, CostEstimate: 12},
					},
				},
			},
		},
	}
}
