package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-travel-buddy/internal/assistant"
	"ai-travel-buddy/internal/config"
	"ai-travel-buddy/internal/location"
	"ai-travel-buddy/internal/markdown"
	"ai-travel-buddy/internal/mapview"
	"ai-travel-buddy/internal/store"
	"ai-travel-buddy/internal/travel"
	"ai-travel-buddy/internal/trip"
)

// App holds the application's dependencies and drives the text front end.
type App struct {
	cfg     *config.Config
	svc     assistant.Service
	manager *trip.Manager
}

// New wires the store, the configured assistant provider (behind the caching
// decorator), the geolocation lookup and the trip manager.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	st, err := store.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	var svc assistant.Service
	switch cfg.Provider {
	case config.ProviderOpenAI:
		svc = assistant.NewOpenAIService(cfg)
	default:
		svc, err = assistant.NewGeminiService(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini provider: %w", err)
		}
	}
	svc = assistant.NewCachedService(svc)

	manager := trip.NewManager(st, svc, lookupLocation(ctx))

	return &App{cfg: cfg, svc: svc, manager: manager}, nil
}

// lookupLocation performs the one-shot best-effort device location request.
func lookupLocation(ctx context.Context) *travel.LatLng {
	loc, err := location.NewIPLocator().Current(ctx)
	if err != nil {
		log.Printf("Could not get user location: %v", err)
		return nil
	}
	return loc
}

// Close releases the provider connection and pending scheduled tasks.
func (a *App) Close() {
	a.manager.Close()
	if closer, ok := a.svc.(assistant.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to close assistant provider: %v", err)
		}
	}
}

// Manager exposes the state container to alternate front ends.
func (a *App) Manager() *trip.Manager {
	return a.manager
}

// Service exposes the assistant gateway to alternate front ends.
func (a *App) Service() assistant.Service {
	return a.svc
}

// Onboard stores the user's preferences and reports the resulting view.
func (a *App) Onboard(prefs travel.UserPreferences) {
	a.manager.SetPreferences(prefs)
	fmt.Printf("Preferences saved. You're all set — current view: %s\n", a.manager.View())
}

// PlanTrip generates and prints a new itinerary for the destination.
func (a *App) PlanTrip(ctx context.Context, destination string, dates travel.DateRange) error {
	fmt.Printf("Planning a trip to %s (%s → %s)...\n", destination, dates.From, dates.To)
	a.manager.SetView(trip.ViewPlanTrip)
	newTrip, err := a.manager.PlanTrip(ctx, destination, dates)
	if err != nil {
		return fmt.Errorf("failed to plan trip: %w", err)
	}
	printItinerary(newTrip.Itinerary)
	return nil
}

// Chat sends one chat turn to the assistant and prints the reply.
func (a *App) Chat(ctx context.Context, text string) error {
	reply, err := a.manager.SendMessage(ctx, text)
	if err != nil {
		return err
	}
	fmt.Printf("\nAssistant: %s\n", reply.Content)
	if reply.RichCard != nil {
		fmt.Printf("  [%s] %s (%.1f★) — %s\n", reply.RichCard.Type, reply.RichCard.Title, reply.RichCard.Rating, reply.RichCard.Description)
		fmt.Println("  Use 'add-to-itinerary' to add this recommendation to your trip.")
	}
	for _, src := range reply.Grounding {
		fmt.Printf("  source (%s): %s\n", src.Type, src.URI)
	}
	return nil
}

// AddLastRichCard promotes the most recent chat recommendation card into the
// active itinerary.
func (a *App) AddLastRichCard() error {
	card, ok := a.manager.LastRichCard()
	if !ok {
		return fmt.Errorf("no recommendation card in the chat log")
	}
	a.manager.AddActivityFromRichCard(card)
	fmt.Printf("Added %q to the itinerary.\n", card.Title)
	return nil
}

// ShowItinerary prints the active trip's full itinerary.
func (a *App) ShowItinerary() error {
	t, ok := a.manager.ActiveTrip()
	if !ok || t.Itinerary == nil {
		return fmt.Errorf("no active trip with an itinerary")
	}
	printItinerary(t.Itinerary)
	return nil
}

// ShowMap prints the static-map pin positions for one day of the active
// itinerary.
func (a *App) ShowMap(dayNumber int) error {
	t, ok := a.manager.ActiveTrip()
	if !ok || t.Itinerary == nil {
		return fmt.Errorf("no active trip with an itinerary")
	}
	for _, day := range t.Itinerary.Days {
		if day.DayNumber != dayNumber {
			continue
		}
		pins := mapview.ParisBounds.Pins(day)
		if len(pins) == 0 {
			fmt.Println("No activities fall inside the map for that day.")
			return nil
		}
		fmt.Printf("Day %d map pins (top%%, left%%):\n", dayNumber)
		for _, pin := range pins {
			fmt.Printf("  %5.1f, %5.1f  %s\n", pin.Top, pin.Left, pin.Activity.Title)
		}
		return nil
	}
	return fmt.Errorf("day %d not found in the itinerary", dayNumber)
}

// ShowSafety prints safety information for the active trip's destination.
func (a *App) ShowSafety(ctx context.Context) error {
	t, ok := a.manager.ActiveTrip()
	if !ok {
		return trip.ErrNoActiveTrip
	}
	info := a.svc.SafetyInfo(ctx, t.Destination)
	fmt.Printf("\n=== SAFETY: %s ===\n", t.Destination)
	fmt.Printf("Neighborhood: %s (score %d/100)\n", info.Neighborhood, info.Score)
	fmt.Printf("%s\n", info.Summary)
	fmt.Printf("Tip: %s\n", info.Recommendation)
	fmt.Printf("Emergency: police %s, ambulance %s, fire %s\n",
		info.EmergencyContacts.Police, info.EmergencyContacts.Ambulance, info.EmergencyContacts.Fire)
	return nil
}

// Translate prints the phrase rendered in the destination's local language.
func (a *App) Translate(ctx context.Context, text string) error {
	t, ok := a.manager.ActiveTrip()
	if !ok {
		return trip.ErrNoActiveTrip
	}
	fmt.Println(a.svc.Translate(ctx, text, t.Destination))
	return nil
}

// CulturalTips prints etiquette tips for the destination, optionally as an
// HTML fragment for embedding.
func (a *App) CulturalTips(ctx context.Context, asHTML bool) error {
	t, ok := a.manager.ActiveTrip()
	if !ok {
		return trip.ErrNoActiveTrip
	}
	tips := a.svc.CulturalTips(ctx, t.Destination)
	if asHTML {
		tips = markdown.ToHTML(tips)
	}
	fmt.Println(tips)
	return nil
}

// Inspire prints suggested destinations.
func (a *App) Inspire(ctx context.Context) {
	fmt.Println("\n=== TRIP INSPIRATIONS ===")
	for _, insp := range a.svc.TripInspirations(ctx) {
		fmt.Printf("- %s: %s\n", insp.Destination, insp.Description)
	}
}

// ShowAlerts prints the active trip's alert log.
func (a *App) ShowAlerts() {
	alerts := a.manager.Alerts()
	if len(alerts) == 0 {
		fmt.Println("No alerts for the active trip.")
		return
	}
	for _, alert := range alerts {
		fmt.Printf("[%s/%s] %s  %s\n", alert.Category, alert.Severity, alert.ID, alert.Message)
		for i, alt := range alert.Alternatives {
			fmt.Printf("    %d) %s — %s (est. %.0f)\n", i+1, alt.Title, alt.Description, alt.CostEstimate)
		}
	}
}

// Disrupt fetches and prints AI-suggested replacements for an alert.
func (a *App) Disrupt(ctx context.Context, alertID string) {
	alternatives := a.manager.HandleDisruption(ctx, alertID)
	if len(alternatives) == 0 {
		fmt.Println("No alternatives available for that alert.")
		return
	}
	fmt.Println("Suggested alternatives:")
	for i, alt := range alternatives {
		fmt.Printf("  %d) %s — %s (est. %.0f)\n", i+1, alt.Title, alt.Description, alt.CostEstimate)
	}
	fmt.Println("Use 'accept <alert-id> <number>' to apply one.")
}

// Accept applies the numbered alternative stored on an alert.
func (a *App) Accept(alertID string, number int) error {
	for _, alert := range a.manager.Alerts() {
		if alert.ID != alertID {
			continue
		}
		if number < 1 || number > len(alert.Alternatives) {
			return fmt.Errorf("alert %s has %d alternatives", alertID, len(alert.Alternatives))
		}
		a.manager.AcceptAlternative(alertID, alert.Alternatives[number-1])
		fmt.Println("Alternative applied to the itinerary.")
		return nil
	}
	return fmt.Errorf("alert %s not found", alertID)
}

// ShowTrips lists all trips with the active one marked.
func (a *App) ShowTrips() {
	active, _ := a.manager.ActiveTrip()
	for _, t := range a.manager.Trips() {
		marker := " "
		if t.ID == active.ID {
			marker = "*"
		}
		sample := ""
		if t.IsSample {
			sample = " (sample)"
		}
		fmt.Printf("%s %s  %s  %s → %s  [%s]%s\n", marker, t.ID, t.Destination, t.StartDate, t.EndDate, t.Status, sample)
	}
}

func printItinerary(it *travel.Itinerary) {
	if it == nil {
		return
	}
	fmt.Printf("\n=== %s (%s → %s) ===\n", it.Destination, it.StartDate, it.EndDate)
	for _, day := range it.Days {
		fmt.Printf("\nDay %d — %s\n", day.DayNumber, day.Date)
		for _, act := range day.Activities {
			fmt.Printf("  %s-%s  %-12s %s (est. %.0f)\n", act.StartTime, act.EndTime, act.Category, act.Title, act.CostEstimate)
			if act.Description != "" {
				fmt.Printf("          %s\n", strings.TrimSpace(act.Description))
			}
		}
	}
}
