package services

import (
	"encoding/json"
	"reflect"
	"testing"

	"wanderplan/internal/models/response_models"
)

// A fully populated, schema-conformant model response must survive the
// pipeline unchanged apart from the forced calendar fields.
func TestRepairPreservesPerfectDocument(t *testing.T) {
	engine := NewItineraryEngine()
	trip := testTrip(t, "Goa", "2025-07-01", "2025-07-02", 10000, false)

	perfect := response_models.ItineraryDocument{
		Destination:        "Goa",
		Duration:           "2 days",
		TotalEstimatedCost: "₹9500",
		TripSummary:        "Two days of beaches and Portuguese heritage.",
		DailyItinerary: []response_models.DayPlan{
			{
				Day:     1,
				Date:    "2025-07-01",
				DayName: "Tuesday",
				Theme:   "North Goa beaches",
				Activities: []response_models.Activity{
					{
						Time:          "09:00 AM",
						Activity:      "Baga Beach morning",
						Description:   "Swim and watersports before the crowds",
						Location:      "Baga Beach, North Goa",
						Duration:      "3 hours",
						EstimatedCost: "₹500",
						Type:          "leisure",
						Highlights:    []string{"Parasailing", "Shacks"},
						Tips:          []string{"Go early"},
					},
				},
				Meals: []response_models.Meal{
					{
						MealType:           "lunch",
						Time:               "01:00 PM",
						Restaurant:         "Britto's",
						Cuisine:            "Goan",
						Location:           "Baga",
						EstimatedCost:      "₹700",
						Specialties:        []string{"Fish curry rice"},
						VegetarianFriendly: false,
						Ambiance:           "casual",
						BookingRequired:    false,
					},
				},
			},
			{
				Day:     2,
				Date:    "2025-07-02",
				DayName: "Wednesday",
				Theme:   "Old Goa heritage",
				Activities: []response_models.Activity{
					{
						Time:          "10:00 AM",
						Activity:      "Basilica of Bom Jesus",
						Description:   "UNESCO World Heritage church",
						Location:      "Old Goa",
						Duration:      "2 hours",
						EstimatedCost: "₹0",
						Type:          "sightseeing",
						Highlights:    []string{"Baroque architecture"},
						Tips:          []string{"Dress modestly"},
					},
				},
				Meals: []response_models.Meal{
					{
						MealType:           "dinner",
						Time:               "08:00 PM",
						Restaurant:         "Mum's Kitchen",
						Cuisine:            "Goan",
						Location:           "Panaji",
						EstimatedCost:      "₹1200",
						Specialties:        []string{"Prawn balchao"},
						VegetarianFriendly: true,
						Ambiance:           "traditional",
						BookingRequired:    true,
					},
				},
			},
		},
		AccommodationSuggestions: []response_models.Accommodation{
			{
				Name:                  "Casa Vagator",
				Type:                  "guesthouse",
				Location:              "Vagator",
				EstimatedCostPerNight: "₹3000",
				Amenities:             []string{"WiFi", "Breakfast"},
				Rating:                "4.3",
				BookingTips:           "Book directly for discounts",
			},
		},
		Transportation: response_models.TransportPlan{
			ToDestination: response_models.TransportLeg{
				Mode:          "flight",
				From:          "Mumbai",
				EstimatedCost: "₹4000",
				Duration:      "1.5 hours",
				BookingTips:   "Midweek flights are cheaper",
			},
			LocalTransport: []response_models.LocalTransport{
				{Mode: "scooter rental", Usage: "all-day transport", EstimatedCost: "₹400 per day"},
			},
		},
		PackingSuggestions: []string{"Swimwear", "Sunscreen"},
		LocalTips:          []string{"Rent a scooter", "Carry cash for shacks"},
		EmergencyContacts: map[string]string{
			"tourist_helpline": "1363",
			"police":           "100",
		},
	}

	raw, err := json.Marshal(perfect)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, outcome := engine.BuildDocument(string(raw), trip)
	if outcome != OutcomeValidated {
		t.Fatalf("outcome = %v, want validated", outcome)
	}
	if !reflect.DeepEqual(got, perfect) {
		t.Errorf("perfect document changed:\n got %+v\nwant %+v", got, perfect)
	}
}

func TestRepairOverwritesModelCalendar(t *testing.T) {
	engine := NewItineraryEngine()
	trip := testTrip(t, "Goa", "2025-07-01", "2025-07-02", 10000, false)

	raw := `{
		"daily_itinerary": [
			{"day": 7, "date": "2031-12-25", "day_name": "Someday",
			 "activities": [{"activity": "Beach"}], "meals": [{"meal_type": "lunch"}]},
			{"day": 1, "date": "2025-07-01", "day_name": "Tuesday",
			 "activities": [{"activity": "Fort"}], "meals": [{"meal_type": "dinner"}]}
		]
	}`

	doc, outcome := engine.BuildDocument(raw, trip)
	if outcome != OutcomeValidated {
		t.Fatalf("outcome = %v, want validated", outcome)
	}

	want := []struct {
		day     int
		date    string
		dayName string
	}{
		{1, "2025-07-01", "Tuesday"},
		{2, "2025-07-02", "Wednesday"},
	}
	for i, w := range want {
		day := doc.DailyItinerary[i]
		if day.Day != w.day || day.Date != w.date || day.DayName != w.dayName {
			t.Errorf("day %d calendar = (%d, %q, %q), want (%d, %q, %q)",
				i+1, day.Day, day.Date, day.DayName, w.day, w.date, w.dayName)
		}
	}
}
