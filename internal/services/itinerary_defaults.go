package services

import (
	"fmt"
	"strings"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
)

// Default content is selected by day index modulo fixed template pools, so
// for the same destination, day and vegetarian flag the output is identical
// on every call. That keeps the fallback path reproducible and testable.

var morningActivityPool = []string{
	"Historic %s Walking Tour",
	"Visit %s Museum",
	"Explore %s Old Town",
	"Temple/Heritage Site Visit in %s",
	"Local Market Tour in %s",
}

var afternoonActivityPool = []string{
	"Scenic Viewpoint in %s",
	"Cultural Center Visit",
	"Local Craft Workshop",
	"Nature Park/Garden Tour",
	"Shopping District Exploration",
}

var eveningActivityPool = []string{
	"Sunset Point in %s",
	"Evening Cultural Show",
	"Riverside/Lakeside Walk",
	"Local Street Food Tour",
	"Photography Walk",
}

func fromPool(pool []string, dayNum int, destination string) string {
	tmpl := pool[(dayNum-1)%len(pool)]
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, destination)
	}
	return tmpl
}

func defaultActivities(destination string, dayNum int) []response_models.Activity {
	return []response_models.Activity{
		{
			Time:          "09:00 AM",
			Activity:      fromPool(morningActivityPool, dayNum, destination),
			Description:   fmt.Sprintf("Start your day exploring the cultural and historical aspects of %s", destination),
			Location:      fmt.Sprintf("Central %s", destination),
			Duration:      "2-3 hours",
			EstimatedCost: "₹200-400",
			Type:          "sightseeing",
			Highlights:    []string{"Historical significance", "Photo opportunities", "Local culture"},
			Tips:          []string{"Start early to avoid crowds", "Carry water", "Wear comfortable shoes"},
		},
		{
			Time:          "02:00 PM",
			Activity:      fromPool(afternoonActivityPool, dayNum, destination),
			Description:   fmt.Sprintf("Afternoon exploration of %s's unique attractions", destination),
			Location:      fmt.Sprintf("%s Main Area", destination),
			Duration:      "2 hours",
			EstimatedCost: "₹150-300",
			Type:          "cultural",
			Highlights:    []string{"Local crafts", "Authentic experience", "Cultural immersion"},
			Tips:          []string{"Bargain at markets", "Try local snacks", "Interact with locals"},
		},
		{
			Time:          "05:30 PM",
			Activity:      fromPool(eveningActivityPool, dayNum, destination),
			Description:   fmt.Sprintf("End your day with beautiful views and relaxation in %s", destination),
			Location:      fmt.Sprintf("%s Scenic Area", destination),
			Duration:      "1.5 hours",
			EstimatedCost: "₹100-200",
			Type:          "leisure",
			Highlights:    []string{"Beautiful views", "Relaxation", "Perfect photo spots"},
			Tips:          []string{"Arrive before sunset", "Carry camera", "Enjoy the moment"},
		},
	}
}

func defaultMeals(vegetarian bool) []response_models.Meal {
	vegSuffix := ""
	if vegetarian {
		vegSuffix = " (Vegetarian)"
	}

	return []response_models.Meal{
		{
			MealType:           "breakfast",
			Time:               "08:00 AM",
			Restaurant:         "Local Breakfast Spot" + vegSuffix,
			Cuisine:            "Traditional breakfast" + vegSuffix,
			Location:           "Near accommodation",
			EstimatedCost:      "₹150-250",
			Specialties:        []string{"Local breakfast items", "Fresh beverages"},
			VegetarianFriendly: vegetarian,
			Ambiance:           "casual",
			BookingRequired:    false,
		},
		{
			MealType:           "lunch",
			Time:               "01:00 PM",
			Restaurant:         "Popular Local Restaurant" + vegSuffix,
			Cuisine:            "Regional specialties" + vegSuffix,
			Location:           "City center",
			EstimatedCost:      "₹300-500",
			Specialties:        []string{"Regional thali", "Local favorites"},
			VegetarianFriendly: vegetarian,
			Ambiance:           "traditional",
			BookingRequired:    false,
		},
		{
			MealType:           "dinner",
			Time:               "07:30 PM",
			Restaurant:         "Fine Dining Restaurant" + vegSuffix,
			Cuisine:            "Multi-cuisine" + vegSuffix,
			Location:           "Premium dining area",
			EstimatedCost:      "₹500-800",
			Specialties:        []string{"Chef's special", "Fusion cuisine"},
			VegetarianFriendly: vegetarian,
			Ambiance:           "upscale",
			BookingRequired:    true,
		},
	}
}

func defaultDay(req request_models.TripRequest, dayNum int) response_models.DayPlan {
	date := req.DateForDay(dayNum)
	return response_models.DayPlan{
		Day:        dayNum,
		Date:       date.Format("2006-01-02"),
		DayName:    date.Weekday().String(),
		Theme:      fmt.Sprintf("Day %d - Discover %s", dayNum, req.Destination),
		Activities: defaultActivities(req.Destination, dayNum),
		Meals:      defaultMeals(req.Vegetarian),
	}
}

func defaultTripSummary(req request_models.TripRequest) string {
	return fmt.Sprintf(
		"An amazing %d-day journey through %s, featuring cultural exploration, local cuisine, and memorable experiences.",
		req.DurationDays(), req.Destination)
}

func defaultAccommodations(destination string) []response_models.Accommodation {
	return []response_models.Accommodation{
		{
			Name:                  fmt.Sprintf("Comfortable Stay in %s", destination),
			Type:                  "hotel",
			Location:              fmt.Sprintf("Central %s", destination),
			EstimatedCostPerNight: "₹2500-4000",
			Amenities:             []string{"WiFi", "Breakfast", "AC", "24/7 Service"},
			Rating:                "4.0",
			BookingTips:           "Compare prices on multiple platforms",
		},
	}
}

func defaultTransportation() response_models.TransportPlan {
	return response_models.TransportPlan{
		ToDestination: response_models.TransportLeg{
			Mode:          "flight/train/bus",
			EstimatedCost: "₹2000-8000",
			Duration:      "1-8 hours depending on distance",
			BookingTips:   "Book tickets in advance for better prices",
		},
		LocalTransport: []response_models.LocalTransport{
			{Mode: "auto/taxi", Usage: "city transport", EstimatedCost: "₹300-600 per day"},
			{Mode: "public transport", Usage: "budget option", EstimatedCost: "₹50-150 per day"},
		},
	}
}

func defaultPackingSuggestions() []string {
	return []string{
		"Comfortable walking shoes",
		"Weather-appropriate clothing",
		"Camera and chargers",
		"Personal medications",
		"Local currency and cards",
	}
}

func defaultLocalTips(destination string) []string {
	return []string{
		fmt.Sprintf("Research %s's weather before traveling", destination),
		"Learn basic local phrases",
		"Keep copies of important documents",
		"Try local street food from busy stalls",
		"Respect local customs and traditions",
		"Keep emergency contacts saved",
	}
}

func defaultEmergencyContacts() map[string]string {
	return map[string]string{
		"tourist_helpline":  "1363",
		"police":            "100",
		"medical_emergency": "108",
		"fire_emergency":    "101",
	}
}

// FallbackDocument builds the fully synthetic itinerary from the request
// alone. It is used when the model's text yields nothing usable and when the
// model call itself fails.
func (e *ItineraryEngine) FallbackDocument(req request_models.TripRequest) response_models.ItineraryDocument {
	days := req.DurationDays()

	dailyItinerary := make([]response_models.DayPlan, 0, days)
	for dayNum := 1; dayNum <= days; dayNum++ {
		dailyItinerary = append(dailyItinerary, defaultDay(req, dayNum))
	}

	return response_models.ItineraryDocument{
		Destination:        req.Destination,
		Duration:           fmt.Sprintf("%d days", days),
		TotalEstimatedCost: fmt.Sprintf("₹%d", req.Budget),
		TripSummary: fmt.Sprintf(
			"Explore the best of %s in %d days with carefully planned activities, local cuisine, and cultural experiences.",
			req.Destination, days),
		DailyItinerary:           dailyItinerary,
		AccommodationSuggestions: defaultAccommodations(req.Destination),
		Transportation:           defaultTransportation(),
		PackingSuggestions:       defaultPackingSuggestions(),
		LocalTips:                defaultLocalTips(req.Destination),
		EmergencyContacts:        defaultEmergencyContacts(),
	}
}
