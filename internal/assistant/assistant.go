package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ai-travel-buddy/internal/travel"

	"github.com/google/uuid"
)

// Service is the provider-agnostic travel assistant gateway.
//
// Operations never return errors: any transport, parse, or schema failure
// degrades to a deterministic static fallback value, so callers only ever
// see a "happy" or a "fallback" result. Failures are logged.
type Service interface {
	// GenerateItinerary builds a personalized day-by-day plan. On failure the
	// static fallback itinerary is returned with its destination and dates
	// overwritten to match the request.
	GenerateItinerary(ctx context.Context, destination string, dates travel.DateRange, prefs travel.UserPreferences) travel.Itinerary

	// ChatReply completes one chat turn. An empty history yields a fixed
	// greeting without a remote call; a leading assistant-authored entry is
	// dropped because the upstream transcript must begin with a user turn.
	ChatReply(ctx context.Context, history []travel.Message, location *travel.LatLng) travel.Message

	// SuggestAlternatives finds replacement activities for a disrupted one.
	// Alternatives inherit the disrupted activity's time window.
	SuggestAlternatives(ctx context.Context, disrupted travel.Activity, location *travel.LatLng) []travel.Activity

	// SafetyInfo looks up a destination safety summary.
	SafetyInfo(ctx context.Context, destination string) travel.SafetyInfo

	// Translate renders an English phrase into the destination's primary
	// local language.
	Translate(ctx context.Context, text, destination string) string

	// CulturalTips returns brief etiquette tips as markdown text.
	CulturalTips(ctx context.Context, destination string) string

	// TripInspirations suggests destinations for the home screen.
	TripInspirations(ctx context.Context) []travel.TripInspiration
}

// Closer is implemented by providers holding a remote connection.
type Closer interface {
	Close() error
}

const chatGreeting = "Hello! How can I assist with your trip planning?"

var errNoContent = errors.New("no content generated")

// greetingMessage is the canned reply for an empty chat history.
func greetingMessage() travel.Message {
	return travel.Message{
		ID:      newMessageID(),
		Role:    travel.RoleAssistant,
		Content: chatGreeting,
	}
}

// prepareHistory trims a leading assistant-authored entry, since both
// providers require the transcript to start with a user turn. The second
// return is false when nothing remains to send.
func prepareHistory(history []travel.Message) ([]travel.Message, bool) {
	if len(history) > 0 && history[0].Role == travel.RoleAssistant {
		history = history[1:]
	}
	if len(history) == 0 {
		return nil, false
	}
	return history, true
}

var codeFenceRe = regexp.MustCompile("^```(?:json)?\n?|\n?```$")

// stripCodeFence removes markdown code-fence markers that models sometimes
// wrap around JSON replies despite instructions not to.
func stripCodeFence(s string) string {
	return codeFenceRe.ReplaceAllString(strings.TrimSpace(s), "")
}

func newMessageID() string {
	return "msg-" + uuid.NewString()
}

// assignItineraryIDs fills in client-side identifiers for a freshly parsed
// itinerary. The upstream model is never asked to produce stable IDs, so day
// and activity IDs are positional while the itinerary gets a fresh UUID.
func assignItineraryIDs(it *travel.Itinerary) {
	it.ID = "trip-" + uuid.NewString()
	for di := range it.Days {
		it.Days[di].ID = fmt.Sprintf("day-%d", di+1)
		for ai := range it.Days[di].Activities {
			it.Days[di].Activities[ai].ID = fmt.Sprintf("act-%d-%d", di+1, ai+1)
		}
	}
}

// assignAlternativeIDs stamps fresh IDs onto suggested alternatives and
// copies the disrupted activity's time window onto each of them. Locations
// keep the model-provided address but drop coordinates, which the upstream
// cannot reliably produce for arbitrary venues.
func assignAlternativeIDs(alts []travel.Activity, disrupted travel.Activity) []travel.Activity {
	for i := range alts {
		alts[i].ID = "alt-" + uuid.NewString()
		alts[i].StartTime = disrupted.StartTime
		alts[i].EndTime = disrupted.EndTime
		alts[i].Location.Lat = 0
		alts[i].Location.Lng = 0
	}
	return alts
}

// chatPayload is the JSON shape both providers ask the model to reply with
// for chat turns.
type chatPayload struct {
	Content  string           `json:"content"`
	RichCard *travel.RichCard `json:"richCard"`
}

// parseChatPayload attempts a structured parse of a chat reply, degrading to
// the raw text as plain content when the model ignored the JSON instruction.
func parseChatPayload(text string) chatPayload {
	cleaned := stripCodeFence(text)
	var payload chatPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil || payload.Content == "" {
		return chatPayload{Content: text}
	}
	if payload.RichCard != nil && payload.RichCard.Title == "" {
		payload.RichCard = nil
	}
	return payload
}
