package travel

// Budget is the traveler's spending tier.
type Budget string

const (
	BudgetEconomy  Budget = "economy"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

// Pace describes how densely packed a traveler wants their days.
type Pace string

const (
	PaceChilled Pace = "chilled"
	PacePacked  Pace = "packed"
)

// UserPreferences is collected once during onboarding and replaced wholesale
// whenever the user re-runs it.
type UserPreferences struct {
	Budget        Budget   `json:"budget"`
	Activities    []string `json:"activities"`
	TravelStyle   Pace     `json:"travelStyle"`
	SafetyComfort int      `json:"safetyComfort"` // 1-5 scale
}

// Category classifies an itinerary activity.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryMuseum    Category = "museum"
	CategoryTour      Category = "tour"
	CategoryOutdoor   Category = "outdoor"
	CategoryShopping  Category = "shopping"
	CategoryNightlife Category = "nightlife"
	CategoryHiddenGem Category = "hidden-gem"
)

// LatLng is a bare coordinate pair, used for device location biasing.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location pins an activity to a place.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Activity is a single itinerary entry. Times are naive "HH:mm" strings with
// no timezone attached.
type Activity struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Location     Location `json:"location"`
	CostEstimate float64  `json:"costEstimate"`
}

// Day holds the activities for one calendar day, in chronological order.
// Insertion order is the display order; activities are never re-sorted.
type Day struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"` // "YYYY-MM-DD"
	DayNumber  int        `json:"dayNumber"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the full day-by-day plan for one trip.
type Itinerary struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Days        []Day  `json:"days"`
}

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	StatusPlanning   TripStatus = "planning"
	StatusInProgress TripStatus = "in-progress"
	StatusCompleted  TripStatus = "completed"
)

// Trip owns at most one itinerary. Trips are never deleted in-app.
type Trip struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Status      TripStatus `json:"status"`
	Itinerary   *Itinerary `json:"itinerary"`
	IsSample    bool       `json:"isSample,omitempty"`
}

// CardType distinguishes the two kinds of rich recommendation cards.
type CardType string

const (
	CardRestaurant CardType = "restaurant"
	CardAttraction CardType = "attraction"
)

// RichCard is a structured recommendation attached to a chat message. It can
// be promoted into an itinerary activity.
type RichCard struct {
	Type        CardType `json:"type"`
	Title       string   `json:"title"`
	ImageURL    string   `json:"imageUrl"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
}

// GroundingSource is a citation (map or search result) attached to an
// assistant reply.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
	Type  string `json:"type"` // "maps" or "search"
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a trip's append-only chat log.
type Message struct {
	ID        string            `json:"id"`
	Role      Role              `json:"role"`
	Content   string            `json:"content"`
	RichCard  *RichCard         `json:"richCard,omitempty"`
	Grounding []GroundingSource `json:"grounding,omitempty"`
}

// AlertCategory separates itinerary disruptions from safety advisories.
type AlertCategory string

const (
	AlertItinerary AlertCategory = "itinerary"
	AlertSafety    AlertCategory = "safety"
)

// AlertType tags the cause of an alert.
type AlertType string

const (
	AlertWeather AlertType = "weather"
	AlertClosure AlertType = "closure"
	AlertCrime   AlertType = "safety"
	AlertTransit AlertType = "transit"
)

// Severity grades an alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert is a disruption notification for a trip. Alternatives are populated
// asynchronously after creation; AffectedActivityID references an activity
// that existed when the alert was created, but nothing re-validates it after
// later itinerary edits.
type Alert struct {
	ID                 string        `json:"id"`
	TripID             string        `json:"tripId"`
	Category           AlertCategory `json:"category"`
	Type               AlertType     `json:"type"`
	Severity           Severity      `json:"severity"`
	Message            string        `json:"message"`
	AffectedActivityID string        `json:"affectedActivityId,omitempty"`
	Alternatives       []Activity    `json:"alternatives,omitempty"`
}

// EmergencyContacts lists local emergency phone numbers.
type EmergencyContacts struct {
	Police    string `json:"police"`
	Ambulance string `json:"ambulance"`
	Fire      string `json:"fire"`
}

// SafetyInfo is a destination safety summary.
type SafetyInfo struct {
	Neighborhood      string            `json:"neighborhood"`
	Score             int               `json:"score"` // 1-100
	Summary           string            `json:"summary"`
	Recommendation    string            `json:"recommendation"`
	EmergencyContacts EmergencyContacts `json:"emergencyContacts"`
}

// TripInspiration is a suggested destination shown on the home screen.
type TripInspiration struct {
	Destination string `json:"destination"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// DateRange is an inclusive "YYYY-MM-DD" trip window.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
