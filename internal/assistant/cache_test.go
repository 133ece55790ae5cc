package assistant

import (
	"context"
	"testing"

	"ai-travel-buddy/internal/travel"
)

// countingService records how many times each operation reached the provider.
type countingService struct {
	safetyCalls    int
	translateCalls int
	tipsCalls      int
	inspireCalls   int
	chatCalls      int
}

func (c *countingService) GenerateItinerary(_ context.Context, destination string, dates travel.DateRange, _ travel.UserPreferences) travel.Itinerary {
	return travel.Itinerary{Destination: destination, StartDate: dates.From, EndDate: dates.To}
}

func (c *countingService) ChatReply(context.Context, []travel.Message, *travel.LatLng) travel.Message {
	c.chatCalls++
	return travel.Message{Role: travel.RoleAssistant, Content: "reply"}
}

func (c *countingService) SuggestAlternatives(context.Context, travel.Activity, *travel.LatLng) []travel.Activity {
	return nil
}

func (c *countingService) SafetyInfo(_ context.Context, destination string) travel.SafetyInfo {
	c.safetyCalls++
	return travel.SafetyInfo{Neighborhood: destination, Score: 80}
}

func (c *countingService) Translate(_ context.Context, text, _ string) string {
	c.translateCalls++
	return "translated: " + text
}

func (c *countingService) CulturalTips(_ context.Context, destination string) string {
	c.tipsCalls++
	return "tips for " + destination
}

func (c *countingService) TripInspirations(context.Context) []travel.TripInspiration {
	c.inspireCalls++
	return []travel.TripInspiration{{Destination: "Kyoto, Japan"}}
}

func TestCachedServiceMemoizesLookups(t *testing.T) {
	ctx := context.Background()
	inner := &countingService{}
	svc := NewCachedService(inner)

	svc.SafetyInfo(ctx, "Paris, France")
	info := svc.SafetyInfo(ctx, "Paris, France")
	if inner.safetyCalls != 1 {
		t.Errorf("Expected 1 safety call, got %d", inner.safetyCalls)
	}
	if info.Score != 80 {
		t.Errorf("Expected cached value to round-trip, got %+v", info)
	}

	svc.SafetyInfo(ctx, "Rome, Italy")
	if inner.safetyCalls != 2 {
		t.Errorf("Expected a second call for a new destination, got %d", inner.safetyCalls)
	}

	svc.Translate(ctx, "thank you", "Paris, France")
	svc.Translate(ctx, "thank you", "Paris, France")
	svc.Translate(ctx, "goodbye", "Paris, France")
	if inner.translateCalls != 2 {
		t.Errorf("Expected 2 translate calls (distinct phrases), got %d", inner.translateCalls)
	}

	svc.CulturalTips(ctx, "Paris, France")
	svc.CulturalTips(ctx, "Paris, France")
	if inner.tipsCalls != 1 {
		t.Errorf("Expected 1 tips call, got %d", inner.tipsCalls)
	}

	svc.TripInspirations(ctx)
	svc.TripInspirations(ctx)
	if inner.inspireCalls != 1 {
		t.Errorf("Expected 1 inspirations call, got %d", inner.inspireCalls)
	}
}

func TestCachedServiceNeverCachesChat(t *testing.T) {
	ctx := context.Background()
	inner := &countingService{}
	svc := NewCachedService(inner)

	history := []travel.Message{{Role: travel.RoleUser, Content: "hi"}}
	svc.ChatReply(ctx, history, nil)
	svc.ChatReply(ctx, history, nil)
	if inner.chatCalls != 2 {
		t.Errorf("Expected every chat turn to reach the provider, got %d calls", inner.chatCalls)
	}
}

func TestCachedServiceCloseWithoutCloser(t *testing.T) {
	svc := NewCachedService(&countingService{})
	if err := svc.Close(); err != nil {
		t.Errorf("Close on a non-Closer provider should be a no-op, got %v", err)
	}
}
