package repositories

import (
	"testing"

	"github.com/google/uuid"

	"wanderplan/internal/models/response_models"
)

func TestFlattenDocument(t *testing.T) {
	itineraryID := uuid.New()
	doc := response_models.ItineraryDocument{
		DailyItinerary: []response_models.DayPlan{
			{
				Day: 1,
				Activities: []response_models.Activity{
					{
						Time:          "09:00 AM",
						Activity:      "Fort Walk",
						Type:          "sightseeing",
						EstimatedCost: "₹200-400",
						Highlights:    []string{"Views", "History"},
					},
					{
						Activity:      "Street Art Stroll",
						EstimatedCost: "free",
					},
				},
				Meals: []response_models.Meal{
					{
						MealType:           "dinner",
						Time:               "07:30 PM",
						Restaurant:         "Harbour House",
						EstimatedCost:      "₹500-800",
						VegetarianFriendly: true,
					},
				},
			},
			{
				Day: 2,
				Activities: []response_models.Activity{
					{Activity: "Spice Market", Time: "morning"},
				},
			},
		},
	}

	activities, meals := flattenDocument(itineraryID, doc)

	if len(activities) != 3 {
		t.Fatalf("activity rows = %d, want 3", len(activities))
	}
	if len(meals) != 1 {
		t.Fatalf("meal rows = %d, want 1", len(meals))
	}

	first := activities[0]
	if first.ItineraryID != itineraryID || first.DayNumber != 1 || first.Title != "Fort Walk" {
		t.Errorf("first row = (%v, %d, %q), want (%v, 1, Fort Walk)", first.ItineraryID, first.DayNumber, first.Title, itineraryID)
	}
	if first.EstimatedCost == nil || *first.EstimatedCost != 200 {
		t.Errorf("first row cost = %v, want 200", first.EstimatedCost)
	}
	if first.StartTime == nil || *first.StartTime != "09:00:00" {
		t.Errorf("first row start time = %v, want 09:00:00", first.StartTime)
	}
	if len(first.Highlights) != 2 {
		t.Errorf("first row highlights = %v, want 2 entries", first.Highlights)
	}

	// "free" has no digits and "morning" no clock; those columns stay null.
	if activities[1].EstimatedCost != nil {
		t.Errorf("cost for %q = %v, want nil", "free", *activities[1].EstimatedCost)
	}
	if activities[2].StartTime != nil {
		t.Errorf("start time for %q = %v, want nil", "morning", *activities[2].StartTime)
	}
	if activities[2].DayNumber != 2 {
		t.Errorf("third row day = %d, want 2", activities[2].DayNumber)
	}

	meal := meals[0]
	if meal.MealType != "dinner" || !meal.VegetarianFriendly {
		t.Errorf("meal row = (%q, %v), want (dinner, true)", meal.MealType, meal.VegetarianFriendly)
	}
	if meal.MealTime == nil || *meal.MealTime != "19:30:00" {
		t.Errorf("meal time = %v, want 19:30:00", meal.MealTime)
	}
	if meal.EstimatedCost == nil || *meal.EstimatedCost != 500 {
		t.Errorf("meal cost = %v, want 500", meal.EstimatedCost)
	}
}
