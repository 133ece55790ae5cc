package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"ai-travel-buddy/internal/assistant"
	"ai-travel-buddy/internal/store"
	"ai-travel-buddy/internal/travel"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Snapshot keys, one per independently persisted state slice.
const (
	keyPreferences = "travel-prefs"
	keyTrips       = "travel-trips"
	keyActiveTrip  = "travel-active-trip"
	keyMessages    = "travel-messages"
	keyAlerts      = "travel-alerts"
)

// defaultInjectionDelay is how long after trip creation the simulated
// disruption feed delivers its alerts.
const defaultInjectionDelay = 5 * time.Second

var (
	ErrNoPreferences = errors.New("onboarding has not been completed")
	ErrNoActiveTrip  = errors.New("no active trip selected")
)

// Manager owns all mutable application state: preferences, the trip list,
// the active-trip pointer, and the per-trip message and alert logs. It is
// the single composition-root-owned state container; every mutation is
// persisted to the corresponding snapshot slice immediately.
type Manager struct {
	mu       sync.Mutex
	store    *store.Store
	svc      assistant.Service
	location *travel.LatLng
	sched    *scheduler

	injectionDelay time.Duration

	prefs          *travel.UserPreferences
	trips          []travel.Trip
	activeTripID   string
	messagesByTrip map[string][]travel.Message
	alertsByTrip   map[string][]travel.Alert
	view           View
}

// NewManager loads all state slices from the store and resolves the boot
// view. A fresh install is seeded with the bundled sample trip.
func NewManager(st *store.Store, svc assistant.Service, location *travel.LatLng) *Manager {
	m := &Manager{
		store:          st,
		svc:            svc,
		location:       location,
		sched:          newScheduler(),
		injectionDelay: defaultInjectionDelay,
		trips:          []travel.Trip{travel.SampleTrip()},
		messagesByTrip: make(map[string][]travel.Message),
		alertsByTrip:   make(map[string][]travel.Alert),
	}

	st.Load(keyPreferences, &m.prefs)
	st.Load(keyTrips, &m.trips)
	st.Load(keyActiveTrip, &m.activeTripID)
	st.Load(keyMessages, &m.messagesByTrip)
	st.Load(keyAlerts, &m.alertsByTrip)
	if m.messagesByTrip == nil {
		m.messagesByTrip = make(map[string][]travel.Message)
	}
	if m.alertsByTrip == nil {
		m.alertsByTrip = make(map[string][]travel.Alert)
	}

	m.view = resolveView(m.prefs != nil, m.activeTripID)
	return m
}

// Close cancels any pending disruption tasks.
func (m *Manager) Close() {
	m.sched.Stop()
}

// View returns the current top-level view.
func (m *Manager) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// SetView reassigns the current view directly.
func (m *Manager) SetView(v View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = v
}

// Preferences returns the onboarded preferences, or nil before onboarding.
func (m *Manager) Preferences() *travel.UserPreferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prefs == nil {
		return nil
	}
	p := *m.prefs
	return &p
}

// SetPreferences replaces the preferences wholesale and re-resolves the view.
func (m *Manager) SetPreferences(prefs travel.UserPreferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &prefs
	m.persist(keyPreferences, m.prefs)
	m.view = resolveView(true, m.activeTripID)
}

// Trips returns a copy of the trip list.
func (m *Manager) Trips() []travel.Trip {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]travel.Trip(nil), m.trips...)
}

// ActiveTrip returns the active trip, if one is selected.
func (m *Manager) ActiveTrip() (travel.Trip, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.activeTripLocked()
	if t == nil {
		return travel.Trip{}, false
	}
	return *t, true
}

// Messages returns the active trip's chat log.
func (m *Manager) Messages() []travel.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeTripID == "" {
		return nil
	}
	return append([]travel.Message(nil), m.messagesByTrip[m.activeTripID]...)
}

// Alerts returns the active trip's alert log.
func (m *Manager) Alerts() []travel.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeTripID == "" {
		return nil
	}
	return append([]travel.Alert(nil), m.alertsByTrip[m.activeTripID]...)
}

// SetActiveTrip switches the active trip and moves to the trip view. A
// pending disruption task for the trip losing active status is cancelled.
func (m *Manager) SetActiveTrip(tripID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeTripID != "" && m.activeTripID != tripID {
		m.sched.Cancel(m.activeTripID)
	}
	m.activeTripID = tripID
	m.persist(keyActiveTrip, m.activeTripID)
	if tripID != "" {
		m.view = ViewTrip
	}
}

// ClearActiveTrip deselects the active trip and returns home, cancelling its
// pending disruption task.
func (m *Manager) ClearActiveTrip() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeTripID != "" {
		m.sched.Cancel(m.activeTripID)
	}
	m.activeTripID = ""
	m.persist(keyActiveTrip, m.activeTripID)
	m.view = ViewHome
}

// PlanTrip generates an itinerary for the destination, wraps it in a new
// in-progress trip, appends it to the trip list and makes it active. A
// simulated disruption feed delivers one itinerary and one safety alert for
// the trip after a fixed delay unless the trip is deactivated first.
func (m *Manager) PlanTrip(ctx context.Context, destination string, dates travel.DateRange) (travel.Trip, error) {
	m.mu.Lock()
	prefs := m.prefs
	m.mu.Unlock()
	if prefs == nil {
		return travel.Trip{}, ErrNoPreferences
	}

	itinerary := m.svc.GenerateItinerary(ctx, destination, dates, *prefs)

	newTrip := travel.Trip{
		ID:          "trip-" + uuid.NewString(),
		Destination: itinerary.Destination,
		StartDate:   itinerary.StartDate,
		EndDate:     itinerary.EndDate,
		Status:      travel.StatusInProgress,
		Itinerary:   &itinerary,
	}

	m.mu.Lock()
	m.trips = append(m.trips, newTrip)
	m.activeTripID = newTrip.ID
	m.view = ViewTrip
	m.persist(keyTrips, m.trips)
	m.persist(keyActiveTrip, m.activeTripID)
	m.mu.Unlock()

	m.sched.Schedule(newTrip.ID, m.injectionDelay, func() {
		m.injectDisruptionAlerts(newTrip.ID)
	})

	return newTrip, nil
}

// injectDisruptionAlerts writes the synthetic itinerary and safety alerts
// into the trip's alert log. The itinerary alert references an activity that
// exists in the trip at creation time.
func (m *Manager) injectDisruptionAlerts(tripID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.findTripLocked(tripID)
	if t == nil || t.Itinerary == nil {
		return
	}

	affected, ok := pickDisruptedActivity(t.Itinerary)
	if !ok {
		return
	}

	alerts := []travel.Alert{
		{
			ID:                 "alert-itinerary-" + uuid.NewString(),
			TripID:             tripID,
			Category:           travel.AlertItinerary,
			Type:               travel.AlertClosure,
			Severity:           travel.SeverityHigh,
			Message:            fmt.Sprintf("Your %s plans (%s) are affected by a local strike. Here are some alternatives.", affected.StartTime, affected.Title),
			AffectedActivityID: affected.ID,
		},
		{
			ID:       "alert-safety-" + uuid.NewString(),
			TripID:   tripID,
			Category: travel.AlertSafety,
			Type:     travel.AlertTransit,
			Severity: travel.SeverityMedium,
			Message:  "Public transport strike announced for tomorrow. Plan for delays.",
		},
	}

	m.alertsByTrip[tripID] = append(m.alertsByTrip[tripID], alerts...)
	m.persist(keyAlerts, m.alertsByTrip)
}

// pickDisruptedActivity chooses the simulated disruption target: the second
// activity of the first day when present, otherwise the first.
func pickDisruptedActivity(it *travel.Itinerary) (travel.Activity, bool) {
	if len(it.Days) == 0 || len(it.Days[0].Activities) == 0 {
		return travel.Activity{}, false
	}
	acts := it.Days[0].Activities
	if len(acts) > 1 {
		return acts[1], true
	}
	return acts[0], true
}

// SendMessage appends the user's message to the active trip's chat log, asks
// the assistant for a reply, and appends that too. The reply lands in the
// same trip's log even if the user navigates away while the call is in
// flight.
func (m *Manager) SendMessage(ctx context.Context, text string) (travel.Message, error) {
	m.mu.Lock()
	tripID := m.activeTripID
	if tripID == "" {
		m.mu.Unlock()
		return travel.Message{}, ErrNoActiveTrip
	}

	userMessage := travel.Message{
		ID:      "msg-" + uuid.NewString(),
		Role:    travel.RoleUser,
		Content: text,
	}
	m.messagesByTrip[tripID] = append(m.messagesByTrip[tripID], userMessage)
	m.persist(keyMessages, m.messagesByTrip)
	history := append([]travel.Message(nil), m.messagesByTrip[tripID]...)
	location := m.location
	m.mu.Unlock()

	reply := m.svc.ChatReply(ctx, history, location)

	m.mu.Lock()
	m.messagesByTrip[tripID] = append(m.messagesByTrip[tripID], reply)
	m.persist(keyMessages, m.messagesByTrip)
	m.mu.Unlock()

	return reply, nil
}

// HandleDisruption asks the assistant for replacements for the activity an
// alert references and stores them on the alert in place. A missing alert or
// activity is a silent no-op returning nil.
func (m *Manager) HandleDisruption(ctx context.Context, alertID string) []travel.Activity {
	m.mu.Lock()
	tripID := m.activeTripID
	t := m.activeTripLocked()
	if t == nil || t.Itinerary == nil {
		m.mu.Unlock()
		return nil
	}

	alert, found := lo.Find(m.alertsByTrip[tripID], func(a travel.Alert) bool { return a.ID == alertID })
	if !found || alert.AffectedActivityID == "" {
		m.mu.Unlock()
		return nil
	}

	activities := lo.FlatMap(t.Itinerary.Days, func(d travel.Day, _ int) []travel.Activity { return d.Activities })
	affected, found := lo.Find(activities, func(a travel.Activity) bool { return a.ID == alert.AffectedActivityID })
	if !found {
		m.mu.Unlock()
		return nil
	}
	location := m.location
	m.mu.Unlock()

	alternatives := m.svc.SuggestAlternatives(ctx, affected, location)

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.alertsByTrip[tripID] {
		if m.alertsByTrip[tripID][i].ID == alertID {
			m.alertsByTrip[tripID][i].Alternatives = alternatives
			break
		}
	}
	m.persist(keyAlerts, m.alertsByTrip)
	return alternatives
}

// AcceptAlternative replaces the activity referenced by the alert with the
// chosen alternative, preserving the original activity id, then removes the
// alert. When the referenced activity no longer exists anywhere in the
// itinerary, nothing is mutated and the alert stays.
func (m *Manager) AcceptAlternative(alertID string, alternative travel.Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.activeTripLocked()
	if t == nil || t.Itinerary == nil {
		return
	}

	alert, found := lo.Find(m.alertsByTrip[t.ID], func(a travel.Alert) bool { return a.ID == alertID })
	if !found {
		return
	}

	replaced := false
	for di := range t.Itinerary.Days {
		day := &t.Itinerary.Days[di]
		for ai := range day.Activities {
			if day.Activities[ai].ID == alert.AffectedActivityID {
				alternative.ID = alert.AffectedActivityID
				day.Activities[ai] = alternative
				replaced = true
				break
			}
		}
		if replaced {
			break
		}
	}

	if !replaced {
		return
	}

	m.persist(keyTrips, m.trips)
	m.clearAlertLocked(t.ID, alertID)
}

// ClearAlert removes one alert from the active trip's log. Unknown ids are
// an idempotent no-op.
func (m *Manager) ClearAlert(alertID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeTripID == "" {
		return
	}
	m.clearAlertLocked(m.activeTripID, alertID)
}

func (m *Manager) clearAlertLocked(tripID, alertID string) {
	m.alertsByTrip[tripID] = lo.Filter(m.alertsByTrip[tripID], func(a travel.Alert, _ int) bool {
		return a.ID != alertID
	})
	m.persist(keyAlerts, m.alertsByTrip)
}

// AddActivityFromRichCard appends an activity derived from a chat
// recommendation card to the last day of the active itinerary. The start is
// 15 minutes after the day's last activity ends (21:00 when the day is
// empty) and the end is 90 minutes later; the clock wraps past midnight
// without advancing the date. A confirmation message is appended to the chat
// log.
func (m *Manager) AddActivityFromRichCard(card travel.RichCard) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.activeTripLocked()
	if t == nil || t.Itinerary == nil || len(t.Itinerary.Days) == 0 {
		return
	}

	lastDay := &t.Itinerary.Days[len(t.Itinerary.Days)-1]

	startTime := "21:00"
	if n := len(lastDay.Activities); n > 0 {
		startTime = travel.ClockAdd(lastDay.Activities[n-1].EndTime, 15)
	}
	endTime := travel.ClockAdd(startTime, 90)

	category := travel.CategoryTour
	cost := 20.0
	if card.Type == travel.CardRestaurant {
		category = travel.CategoryFood
		cost = 40.0
	}

	lastDay.Activities = append(lastDay.Activities, travel.Activity{
		ID:           "rc-" + uuid.NewString(),
		Title:        card.Title,
		Description:  card.Description,
		Category:     category,
		StartTime:    startTime,
		EndTime:      endTime,
		Location:     travel.Location{Lat: 48.8566, Lng: 2.3522, Address: "Added from chat"},
		CostEstimate: cost,
	})
	m.persist(keyTrips, m.trips)

	m.messagesByTrip[t.ID] = append(m.messagesByTrip[t.ID], travel.Message{
		ID:      "msg-confirm-" + uuid.NewString(),
		Role:    travel.RoleAssistant,
		Content: fmt.Sprintf("Great! I've added %q to your itinerary for Day %d.", card.Title, lastDay.DayNumber),
	})
	m.persist(keyMessages, m.messagesByTrip)
}

// LastRichCard returns the most recent chat message card for the active
// trip, scanning the log backwards.
func (m *Manager) LastRichCard() (travel.RichCard, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeTripID == "" {
		return travel.RichCard{}, false
	}
	msgs := m.messagesByTrip[m.activeTripID]
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].RichCard != nil {
			return *msgs[i].RichCard, true
		}
	}
	return travel.RichCard{}, false
}

func (m *Manager) activeTripLocked() *travel.Trip {
	return m.findTripLocked(m.activeTripID)
}

func (m *Manager) findTripLocked(tripID string) *travel.Trip {
	if tripID == "" {
		return nil
	}
	for i := range m.trips {
		if m.trips[i].ID == tripID {
			return &m.trips[i]
		}
	}
	return nil
}

// persist writes one state slice, logging failures instead of surfacing
// them.
func (m *Manager) persist(key string, v any) {
	if err := m.store.Save(key, v); err != nil {
		log.Printf("trip: failed to persist %q: %v", key, err)
	}
}
