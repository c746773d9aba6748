package request_models

import (
	"strings"
	"time"

	"wanderplan/pkg/utils"
)

const dateLayout = "2006-01-02"

// GenerateItineraryRequest is the wire shape of POST /api/itineraries/generate.
type GenerateItineraryRequest struct {
	Destination         string `json:"destination" binding:"required"`
	StartDate           string `json:"start_date" binding:"required"`
	EndDate             string `json:"end_date" binding:"required"`
	Budget              int    `json:"budget" binding:"required"`
	IsVegetarian        bool   `json:"isVegetarian"`
	Travelers           int    `json:"travelers"`
	SpecialRequirements string `json:"special_requirements"`
}

// TripRequest is the validated, immutable form handed to the generation
// pipeline. All derived values (duration, per-day budget, per-day dates)
// come from here so that every component agrees on the calendar.
type TripRequest struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      int
	Vegetarian  bool
}

// ToTripRequest validates the raw request fields and builds the TripRequest.
func (r GenerateItineraryRequest) ToTripRequest() (TripRequest, error) {
	destination := strings.TrimSpace(r.Destination)
	if destination == "" {
		return TripRequest{}, utils.ErrInvalidInput
	}
	if r.Budget <= 0 {
		return TripRequest{}, utils.ErrInvalidBudget
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return TripRequest{}, utils.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return TripRequest{}, utils.ErrInvalidDateFormat
	}
	if !end.After(start) {
		return TripRequest{}, utils.ErrInvalidDateRange
	}

	return TripRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      r.Budget,
		Vegetarian:  r.IsVegetarian,
	}, nil
}

// DurationDays is the inclusive day count of the trip.
func (t TripRequest) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// BudgetPerDay splits the total budget evenly across the trip.
func (t TripRequest) BudgetPerDay() int {
	return t.Budget / t.DurationDays()
}

// DateForDay returns the calendar date of a 1-based day number.
func (t TripRequest) DateForDay(day int) time.Time {
	return t.StartDate.AddDate(0, 0, day-1)
}
