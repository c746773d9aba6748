package services

import (
	"fmt"
	"strings"

	"wanderplan/internal/models/request_models"
)

// BuildItineraryPrompt renders the user prompt sent to the text model. The
// schema block mirrors the document shape so a cooperative model can be
// parsed without repair; an uncooperative one is handled downstream.
func BuildItineraryPrompt(req request_models.TripRequest) string {
	days := req.DurationDays()
	budgetPerDay := req.BudgetPerDay()

	foodRequirement := "any cuisine type"
	if req.Vegetarian {
		foodRequirement = "MUST include vegetarian options"
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Create a detailed %d-day travel itinerary for visiting %s.\n\n", days, req.Destination)
	prompt.WriteString("RESPOND WITH VALID JSON ONLY - NO OTHER TEXT.\n\n")

	prompt.WriteString("Trip Details:\n")
	fmt.Fprintf(&prompt, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&prompt, "- Dates: %s to %s\n",
		req.StartDate.Format("2006-01-02 (Monday)"),
		req.EndDate.Format("2006-01-02 (Monday)"))
	fmt.Fprintf(&prompt, "- Duration: %d days\n", days)
	fmt.Fprintf(&prompt, "- Total Budget: ₹%d (≈₹%d per day)\n", req.Budget, budgetPerDay)
	fmt.Fprintf(&prompt, "- Food Requirements: %s\n\n", foodRequirement)

	prompt.WriteString("JSON Structure Required:\n")
	fmt.Fprintf(&prompt, `{
  "destination": "%s",
  "duration": "%d days",
  "total_estimated_cost": "₹%d",
  "trip_summary": "Brief engaging description of the trip experience",
  "daily_itinerary": [
`, req.Destination, days, req.Budget)

	for dayNum := 1; dayNum <= days; dayNum++ {
		date := req.DateForDay(dayNum)
		fmt.Fprintf(&prompt, `    {
      "day": %d,
      "date": "%s",
      "day_name": "%s",
      "theme": "Day %d theme (e.g., Historical Exploration, Local Culture, Adventure)",
      "activities": [
        {
          "time": "09:00 AM",
          "activity": "Specific activity name",
          "description": "Detailed description with what to expect",
          "location": "Exact location with area/landmark reference",
          "duration": "2-3 hours",
          "estimated_cost": "₹200-500",
          "type": "sightseeing",
          "highlights": ["Key attraction 1", "Photo opportunity"],
          "tips": ["Best time to visit", "What to bring"]
        }
      ],
      "meals": [
        {
          "meal_type": "breakfast",
          "time": "08:00 AM",
          "restaurant": "Specific restaurant name",
          "cuisine": "Local/Continental",
          "location": "Restaurant area/address",
          "estimated_cost": "₹%d",
          "specialties": ["Dish 1", "Dish 2"],
          "vegetarian_friendly": %t,
          "ambiance": "casual/fine-dining/street-food",
          "booking_required": false
        }
      ]
    }`, dayNum, date.Format("2006-01-02"), date.Weekday(), dayNum, budgetPerDay/4, req.Vegetarian)
		if dayNum < days {
			prompt.WriteString(",\n")
		} else {
			prompt.WriteString("\n")
		}
	}

	fmt.Fprintf(&prompt, `  ],
  "accommodation_suggestions": [
    {
      "name": "Specific hotel/property name",
      "type": "hotel/resort/guesthouse",
      "location": "Exact area in %s",
      "estimated_cost_per_night": "₹XXXX",
      "amenities": ["WiFi", "Breakfast", "AC"],
      "rating": "4.2",
      "booking_tips": "Book in advance for better rates"
    }
  ],
  "transportation": {
    "to_destination": {
      "mode": "flight/train/bus",
      "from": "major nearby city",
      "estimated_cost": "₹XXXX",
      "duration": "X hours",
      "booking_tips": "Best booking platform or tips"
    },
    "local_transport": [
      {"mode": "taxi/auto/bus/metro", "usage": "airport to hotel", "estimated_cost": "₹XXX"}
    ]
  },
  "packing_suggestions": ["Weather-appropriate clothing", "Comfortable walking shoes"],
  "local_tips": ["Best time to visit attractions", "Local customs to respect"],
  "emergency_contacts": {
    "tourist_helpline": "Contact number",
    "local_emergency": "108",
    "nearest_hospital": "Hospital name and contact"
  }
}

`, req.Destination)

	fmt.Fprintf(&prompt,
		"Make this itinerary engaging, practical, and perfectly suited for %s. Include real restaurant names, specific attractions, accurate costs, and insider tips.\n",
		req.Destination)

	return prompt.String()
}
