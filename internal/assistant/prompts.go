package assistant

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"ai-travel-buddy/internal/travel"
)

//go:embed itinerary_prompt.md
var itineraryPrompt string

type itineraryPromptData struct {
	Destination string
	From        string
	To          string
	Budget      travel.Budget
	Interests   string
	Pace        travel.Pace
}

func buildItineraryPrompt(destination string, dates travel.DateRange, prefs travel.UserPreferences) (string, error) {
	tmpl, err := template.New("itinerary").Parse(itineraryPrompt)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, itineraryPromptData{
		Destination: destination,
		From:        dates.From,
		To:          dates.To,
		Budget:      prefs.Budget,
		Interests:   strings.Join(prefs.Activities, ", "),
		Pace:        prefs.TravelStyle,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

const chatSystemPrompt = `You are an AI Travel Buddy, a helpful and friendly travel companion. When you provide a specific recommendation (like a restaurant or attraction), structure your response as a JSON object with 'content' and an optional 'richCard' object with keys: title, description, imageUrl, rating (number), type (restaurant|attraction). The imageUrl should be a real, working URL. For general chat, the richCard field should be null. Use markdown for formatting (e.g., **bold** for emphasis, asterisks for lists). Your final output should be a parseable JSON string with no code fences.`

func chatLocationHint(location *travel.LatLng) string {
	if location == nil {
		return ""
	}
	return fmt.Sprintf("User approximate location (lat,lng): %g, %g. Prefer nearby recommendations.", location.Lat, location.Lng)
}

func buildAlternativesPrompt(disrupted travel.Activity) string {
	return fmt.Sprintf(`Find 2-3 alternative activities similar to %q (%s) near %s. The original activity started at %s. Respond with a JSON object with key "alternatives" as an array of objects. Each object must have keys: "title", "description", "category" (from 'food', 'museum', 'tour', 'outdoor', 'shopping', 'nightlife', 'hidden-gem'), "location" (object with "address"), and "costEstimate" (number). Return ONLY raw JSON.`,
		disrupted.Title, disrupted.Category, disrupted.Location.Address, disrupted.StartTime)
}

func buildSafetyPrompt(destination string) string {
	return fmt.Sprintf(`Provide safety information for a tourist in %s. Respond with a single JSON object with keys: "neighborhood" (a generally central and popular area), "score" (a safety score from 1-100), "summary" (a brief overview), "recommendation" (a specific, actionable tip), and "emergencyContacts" (an object with "police", "ambulance", and "fire" numbers for the country). Use markdown for emphasis in the summary and recommendation.`, destination)
}

func buildTranslatePrompt(text, destination string) string {
	return fmt.Sprintf("Translate the following English phrase into the primary local language spoken in %s. Reply with the translation only. Phrase: %q", destination, text)
}

func buildCulturalTipsPrompt(destination string) string {
	return fmt.Sprintf("Provide 3 brief, essential cultural etiquette tips for a tourist visiting %s. Focus on greetings, dining, and public transport. Use markdown for emphasis (e.g., **bold**) and for lists (using asterisks).", destination)
}

const inspirationsPrompt = `Suggest 4 diverse and popular travel destinations. Respond with a JSON object with key "inspirations" as an array of items, each with a "destination" (City, Country), a short, enticing "description", and an "imageUrl" for a beautiful, royalty-free, high-quality photo from a site like Unsplash or Pexels.`
