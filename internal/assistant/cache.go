package assistant

import (
	"context"
	"time"

	"ai-travel-buddy/internal/travel"

	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheTTL     = 30 * time.Minute
	cacheSweep   = 10 * time.Minute
	inspirations = "inspirations"
)

// CachedService wraps a Service to memoize the destination-keyed lookups
// (safety, translation, tips, inspirations), cutting repeat API calls.
// Generation, chat, and alternative suggestions always go to the provider.
type CachedService struct {
	svc   Service
	cache *gocache.Cache
}

// NewCachedService creates a caching decorator around svc.
func NewCachedService(svc Service) *CachedService {
	return &CachedService{
		svc:   svc,
		cache: gocache.New(cacheTTL, cacheSweep),
	}
}

func (c *CachedService) GenerateItinerary(ctx context.Context, destination string, dates travel.DateRange, prefs travel.UserPreferences) travel.Itinerary {
	return c.svc.GenerateItinerary(ctx, destination, dates, prefs)
}

func (c *CachedService) ChatReply(ctx context.Context, history []travel.Message, location *travel.LatLng) travel.Message {
	return c.svc.ChatReply(ctx, history, location)
}

func (c *CachedService) SuggestAlternatives(ctx context.Context, disrupted travel.Activity, location *travel.LatLng) []travel.Activity {
	return c.svc.SuggestAlternatives(ctx, disrupted, location)
}

func (c *CachedService) SafetyInfo(ctx context.Context, destination string) travel.SafetyInfo {
	key := "safety:" + destination
	if cached, found := c.cache.Get(key); found {
		return cached.(travel.SafetyInfo)
	}
	info := c.svc.SafetyInfo(ctx, destination)
	c.cache.SetDefault(key, info)
	return info
}

func (c *CachedService) Translate(ctx context.Context, text, destination string) string {
	key := "translate:" + destination + ":" + text
	if cached, found := c.cache.Get(key); found {
		return cached.(string)
	}
	out := c.svc.Translate(ctx, text, destination)
	c.cache.SetDefault(key, out)
	return out
}

func (c *CachedService) CulturalTips(ctx context.Context, destination string) string {
	key := "tips:" + destination
	if cached, found := c.cache.Get(key); found {
		return cached.(string)
	}
	out := c.svc.CulturalTips(ctx, destination)
	c.cache.SetDefault(key, out)
	return out
}

func (c *CachedService) TripInspirations(ctx context.Context) []travel.TripInspiration {
	if cached, found := c.cache.Get(inspirations); found {
		return cached.([]travel.TripInspiration)
	}
	out := c.svc.TripInspirations(ctx)
	c.cache.SetDefault(inspirations, out)
	return out
}

// Close closes the wrapped provider when it holds a remote connection.
func (c *CachedService) Close() error {
	if closer, ok := c.svc.(Closer); ok {
		return closer.Close()
	}
	return nil
}
