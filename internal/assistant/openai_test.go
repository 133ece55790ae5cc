package assistant

import (
	"context"
	"testing"

	"ai-travel-buddy/internal/config"
	"ai-travel-buddy/internal/travel"
)

func testOpenAIService() Service {
	return NewOpenAIService(&config.Config{OpenAIAPIKey: "test-key"})
}

// cancelledCtx forces every remote call to fail immediately so the fallback
// path can be tested without network access.
func cancelledCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestOpenAIChatReplyEmptyHistoryGreetsWithoutRemoteCall(t *testing.T) {
	svc := testOpenAIService()

	msg := svc.ChatReply(context.Background(), nil, nil)
	if msg.Content != chatGreeting {
		t.Errorf("Expected the canned greeting, got %q", msg.Content)
	}
	if msg.Role != travel.RoleAssistant {
		t.Errorf("Expected an assistant message, got role %q", msg.Role)
	}

	// A log holding only the assistant greeting behaves the same.
	history := []travel.Message{{Role: travel.RoleAssistant, Content: chatGreeting}}
	if msg := svc.ChatReply(context.Background(), history, nil); msg.Content != chatGreeting {
		t.Errorf("Expected the canned greeting again, got %q", msg.Content)
	}
}

func TestOpenAIGenerateItineraryFallsBackRebranded(t *testing.T) {
	svc := testOpenAIService()

	it := svc.GenerateItinerary(cancelledCtx(), "Lisbon, Portugal", travel.DateRange{From: "2026-03-01", To: "2026-03-04"}, travel.UserPreferences{})
	if it.Destination != "Lisbon, Portugal" {
		t.Errorf("Expected the fallback to carry the requested destination, got %q", it.Destination)
	}
	if it.StartDate != "2026-03-01" || it.EndDate != "2026-03-04" {
		t.Errorf("Expected the fallback to carry the requested dates, got %s-%s", it.StartDate, it.EndDate)
	}
	if len(it.Days) == 0 {
		t.Error("Expected the fallback itinerary to have at least one day")
	}
}

func TestOpenAIChatReplyFallsBack(t *testing.T) {
	svc := testOpenAIService()

	history := []travel.Message{{Role: travel.RoleUser, Content: "hello"}}
	msg := svc.ChatReply(cancelledCtx(), history, nil)
	if msg.Content != chatUnavailable {
		t.Errorf("Expected the chat fallback, got %q", msg.Content)
	}
}

func TestOpenAISuggestAlternativesFallsBackWithInheritedTimes(t *testing.T) {
	svc := testOpenAIService()

	disrupted := travel.Activity{ID: "act-1", StartTime: "16:30", EndTime: "19:00"}
	alts := svc.SuggestAlternatives(cancelledCtx(), disrupted, nil)
	if len(alts) == 0 {
		t.Fatal("Expected fallback alternatives")
	}
	for _, alt := range alts {
		if alt.StartTime != "16:30" || alt.EndTime != "19:00" {
			t.Errorf("Alternative %q did not inherit the time window", alt.Title)
		}
	}
}

func TestOpenAILookupsFallBack(t *testing.T) {
	svc := testOpenAIService()
	ctx := cancelledCtx()

	if info := svc.SafetyInfo(ctx, "Paris"); info.Neighborhood != "Unavailable" {
		t.Errorf("Expected the safety fallback, got %+v", info)
	}
	if out := svc.Translate(ctx, "thank you", "Paris"); out != translationUnavailable {
		t.Errorf("Expected the translation fallback, got %q", out)
	}
	if out := svc.CulturalTips(ctx, "Paris"); out != tipsUnavailable {
		t.Errorf("Expected the tips fallback, got %q", out)
	}
	if ins := svc.TripInspirations(ctx); len(ins) != 4 {
		t.Errorf("Expected the 4 mock inspirations, got %d", len(ins))
	}
}
