package services

import (
	"fmt"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
)

// repairDocument builds a complete itinerary document from whatever the model
// produced. It is total: every branch has a default, so any candidate object,
// however mangled, yields a schema-conformant document. The document is
// constructed fresh field by field rather than patched in place.
func (e *ItineraryEngine) repairDocument(candidate map[string]interface{}, req request_models.TripRequest) response_models.ItineraryDocument {
	days := req.DurationDays()

	doc := response_models.ItineraryDocument{
		Destination:        req.Destination,
		Duration:           fmt.Sprintf("%d days", days),
		TotalEstimatedCost: stringOr(candidate["total_estimated_cost"], fmt.Sprintf("₹%d", req.Budget)),
		TripSummary:        stringOr(candidate["trip_summary"], defaultTripSummary(req)),
		DailyItinerary:     make([]response_models.DayPlan, 0, days),
	}

	rawDays, _ := candidate["daily_itinerary"].([]interface{})
	for i := 0; i < days; i++ {
		dayNum := i + 1

		var day response_models.DayPlan
		if i < len(rawDays) {
			if m, ok := rawDays[i].(map[string]interface{}); ok {
				day = e.coerceDay(m, req, dayNum)
			} else {
				day = defaultDay(req, dayNum)
			}
		} else {
			day = defaultDay(req, dayNum)
		}

		// Calendar fields always come from the request; the model is an
		// unreliable clock.
		date := req.DateForDay(dayNum)
		day.Day = dayNum
		day.Date = date.Format("2006-01-02")
		day.DayName = date.Weekday().String()

		doc.DailyItinerary = append(doc.DailyItinerary, day)
	}

	doc.AccommodationSuggestions = e.coerceAccommodations(candidate["accommodation_suggestions"], req)
	doc.Transportation = e.coerceTransportation(candidate["transportation"])
	doc.PackingSuggestions = sliceOr(candidate["packing_suggestions"], defaultPackingSuggestions())
	doc.LocalTips = sliceOr(candidate["local_tips"], defaultLocalTips(req.Destination))
	doc.EmergencyContacts = e.coerceEmergencyContacts(candidate["emergency_contacts"])

	return doc
}

func (e *ItineraryEngine) coerceDay(m map[string]interface{}, req request_models.TripRequest, dayNum int) response_models.DayPlan {
	day := response_models.DayPlan{
		Theme: stringOr(m["theme"], fmt.Sprintf("Day %d - Explore %s", dayNum, req.Destination)),
	}

	// Presence is trusted at whole-field granularity: a well-formed list of
	// partially filled entries is accepted as-is, only a missing, mistyped,
	// or empty list is replaced wholesale.
	day.Activities = e.coerceActivities(m["activities"])
	if len(day.Activities) == 0 {
		day.Activities = defaultActivities(req.Destination, dayNum)
	}

	day.Meals = e.coerceMeals(m["meals"], req.Vegetarian)
	if len(day.Meals) == 0 {
		day.Meals = defaultMeals(req.Vegetarian)
	}

	return day
}

func (e *ItineraryEngine) coerceActivities(v interface{}) []response_models.Activity {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}

	activities := make([]response_models.Activity, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		title := asString(m["activity"])
		if title == "" {
			title = asString(m["title"])
		}
		activities = append(activities, response_models.Activity{
			Time:          asString(m["time"]),
			Activity:      title,
			Description:   asString(m["description"]),
			Location:      asString(m["location"]),
			Duration:      asString(m["duration"]),
			EstimatedCost: asString(m["estimated_cost"]),
			Type:          asString(m["type"]),
			Highlights:    asStringSlice(m["highlights"]),
			Tips:          asStringSlice(m["tips"]),
		})
	}
	return activities
}

func (e *ItineraryEngine) coerceMeals(v interface{}, vegetarian bool) []response_models.Meal {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}

	meals := make([]response_models.Meal, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		meal := response_models.Meal{
			MealType:      asString(m["meal_type"]),
			Time:          asString(m["time"]),
			Restaurant:    asString(m["restaurant"]),
			Cuisine:       asString(m["cuisine"]),
			Location:      asString(m["location"]),
			EstimatedCost: asString(m["estimated_cost"]),
			Specialties:   asStringSlice(m["specialties"]),
			Ambiance:      asString(m["ambiance"]),
		}
		// Model-supplied booleans are kept when well-typed; a defaulted
		// vegetarian flag must reflect the request.
		if b, ok := m["vegetarian_friendly"].(bool); ok {
			meal.VegetarianFriendly = b
		} else {
			meal.VegetarianFriendly = vegetarian
		}
		if b, ok := m["booking_required"].(bool); ok {
			meal.BookingRequired = b
		}
		meals = append(meals, meal)
	}
	return meals
}

func (e *ItineraryEngine) coerceAccommodations(v interface{}, req request_models.TripRequest) []response_models.Accommodation {
	raw, _ := v.([]interface{})

	accommodations := make([]response_models.Accommodation, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		accommodations = append(accommodations, response_models.Accommodation{
			Name:                  asString(m["name"]),
			Type:                  asString(m["type"]),
			Location:              asString(m["location"]),
			EstimatedCostPerNight: asString(m["estimated_cost_per_night"]),
			Amenities:             asStringSlice(m["amenities"]),
			Rating:                asString(m["rating"]),
			BookingTips:           asString(m["booking_tips"]),
		})
	}

	if len(accommodations) == 0 {
		return defaultAccommodations(req.Destination)
	}
	return accommodations
}

func (e *ItineraryEngine) coerceTransportation(v interface{}) response_models.TransportPlan {
	m, ok := v.(map[string]interface{})
	if !ok {
		return defaultTransportation()
	}

	plan := response_models.TransportPlan{}
	if leg, ok := m["to_destination"].(map[string]interface{}); ok {
		plan.ToDestination = response_models.TransportLeg{
			Mode:          asString(leg["mode"]),
			From:          asString(leg["from"]),
			EstimatedCost: asString(leg["estimated_cost"]),
			Duration:      asString(leg["duration"]),
			BookingTips:   asString(leg["booking_tips"]),
		}
	} else {
		plan.ToDestination = defaultTransportation().ToDestination
	}

	if local, ok := m["local_transport"].([]interface{}); ok {
		for _, item := range local {
			lm, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			plan.LocalTransport = append(plan.LocalTransport, response_models.LocalTransport{
				Mode:          asString(lm["mode"]),
				Usage:         asString(lm["usage"]),
				EstimatedCost: asString(lm["estimated_cost"]),
			})
		}
	}
	if len(plan.LocalTransport) == 0 {
		plan.LocalTransport = defaultTransportation().LocalTransport
	}

	return plan
}

func (e *ItineraryEngine) coerceEmergencyContacts(v interface{}) map[string]string {
	m, ok := v.(map[string]interface{})
	if !ok || len(m) == 0 {
		return defaultEmergencyContacts()
	}

	contacts := make(map[string]string, len(m))
	for key, val := range m {
		contacts[key] = asString(val)
	}
	return contacts
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func asStringSlice(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func sliceOr(v interface{}, fallback []string) []string {
	if items := asStringSlice(v); len(items) > 0 {
		return items
	}
	return fallback
}
