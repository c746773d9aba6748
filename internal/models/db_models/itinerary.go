package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Itinerary is the parent row of one generated trip. The full document is
// kept as JSONB so the client always gets back exactly what was generated;
// activities and meals are additionally flattened into child rows for
// querying.
type Itinerary struct {
	BaseModel
	UserID               uuid.UUID `gorm:"type:uuid;index"`
	Destination          string
	StartDate            time.Time
	EndDate              time.Time
	Travelers            int
	Budget               int
	VegetarianPreference bool
	SpecialRequirements  string
	Source               string         // "model" or "fallback"
	Document             datatypes.JSON `gorm:"type:jsonb"`

	Activities []ItineraryActivity
	Meals      []ItineraryMeal
}

type ItineraryActivity struct {
	BaseModel
	ItineraryID  uuid.UUID `gorm:"type:uuid;index"`
	DayNumber    int
	ActivityType string
	Title        string
	Description  string
	Location     string
	// Normalized from the document's free-form strings; nil when the
	// source text carried no usable value.
	EstimatedCost *float64
	StartTime     *string

	Highlights pq.StringArray `gorm:"type:text[]"`
}

type ItineraryMeal struct {
	BaseModel
	ItineraryID        uuid.UUID `gorm:"type:uuid;index"`
	DayNumber          int
	MealType           string
	Restaurant         string
	Cuisine            string
	Location           string
	EstimatedCost      *float64
	MealTime           *string
	Specialties        pq.StringArray `gorm:"type:text[]"`
	VegetarianFriendly bool
}
