package response_models

// ItineraryDocument is the full generated itinerary as served to clients and
// stored alongside the itinerary row. Every document leaving the generation
// pipeline is complete: all fields populated, one DayPlan per trip day.
type ItineraryDocument struct {
	Destination              string            `json:"destination"`
	Duration                 string            `json:"duration"`
	TotalEstimatedCost       string            `json:"total_estimated_cost"`
	TripSummary              string            `json:"trip_summary"`
	DailyItinerary           []DayPlan         `json:"daily_itinerary"`
	AccommodationSuggestions []Accommodation   `json:"accommodation_suggestions"`
	Transportation           TransportPlan     `json:"transportation"`
	PackingSuggestions       []string          `json:"packing_suggestions"`
	LocalTips                []string          `json:"local_tips"`
	EmergencyContacts        map[string]string `json:"emergency_contacts"`
}

// DayPlan holds one day of the itinerary. Day is 1-based and matches the
// element's position; Date and DayName are always derived from the trip's
// start date, never from model output.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	DayName    string     `json:"day_name"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
}

type Activity struct {
	Time          string   `json:"time"`
	Activity      string   `json:"activity"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Duration      string   `json:"duration"`
	EstimatedCost string   `json:"estimated_cost"`
	Type          string   `json:"type"`
	Highlights    []string `json:"highlights"`
	Tips          []string `json:"tips"`
}

type Meal struct {
	MealType           string   `json:"meal_type"`
	Time               string   `json:"time"`
	Restaurant         string   `json:"restaurant"`
	Cuisine            string   `json:"cuisine"`
	Location           string   `json:"location"`
	EstimatedCost      string   `json:"estimated_cost"`
	Specialties        []string `json:"specialties"`
	VegetarianFriendly bool     `json:"vegetarian_friendly"`
	Ambiance           string   `json:"ambiance"`
	BookingRequired    bool     `json:"booking_required"`
}

type Accommodation struct {
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	Location              string   `json:"location"`
	EstimatedCostPerNight string   `json:"estimated_cost_per_night"`
	Amenities             []string `json:"amenities"`
	Rating                string   `json:"rating"`
	BookingTips           string   `json:"booking_tips"`
}

type TransportPlan struct {
	ToDestination  TransportLeg     `json:"to_destination"`
	LocalTransport []LocalTransport `json:"local_transport"`
}

type TransportLeg struct {
	Mode          string `json:"mode"`
	From          string `json:"from,omitempty"`
	EstimatedCost string `json:"estimated_cost"`
	Duration      string `json:"duration"`
	BookingTips   string `json:"booking_tips"`
}

type LocalTransport struct {
	Mode          string `json:"mode"`
	Usage         string `json:"usage"`
	EstimatedCost string `json:"estimated_cost"`
}

// GeneratedItinerary is the response of the generate endpoint: the document
// plus how it was produced and whether persistence succeeded.
type GeneratedItinerary struct {
	ID            string            `json:"id,omitempty"`
	UserID        string            `json:"user_id,omitempty"`
	Source        string            `json:"source"`
	DatabaseSaved bool              `json:"database_saved"`
	CreatedAt     int64             `json:"created_at,omitempty"`
	Document      ItineraryDocument `json:"itinerary"`
}

// ItinerarySummary is one row of the list endpoint.
type ItinerarySummary struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Travelers   int    `json:"travelers"`
	Source      string `json:"source"`
	CreatedAt   int64  `json:"created_at"`
}

// StoredItinerary is the detail view of a persisted itinerary.
type StoredItinerary struct {
	ItinerarySummary
	Document ItineraryDocument `json:"itinerary"`
}
