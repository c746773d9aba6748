package services

import (
	"reflect"
	"testing"
)

func TestFallbackDocumentIsDeterministic(t *testing.T) {
	engine := NewItineraryEngine()
	trip := testTrip(t, "Hampi", "2025-07-01", "2025-07-05", 18000, true)

	first := engine.FallbackDocument(trip)
	second := engine.FallbackDocument(trip)

	if !reflect.DeepEqual(first, second) {
		t.Error("same request produced different fallback documents")
	}
	assertCompleteDocument(t, first, trip)
}

func TestFallbackActivitiesRotateByDay(t *testing.T) {
	dayOne := defaultActivities("Hampi", 1)
	dayTwo := defaultActivities("Hampi", 2)
	daySix := defaultActivities("Hampi", 6)

	if dayOne[0].Activity == dayTwo[0].Activity {
		t.Errorf("day 1 and day 2 share morning activity %q", dayOne[0].Activity)
	}
	// Pools hold five templates, so day 6 wraps back to day 1.
	if dayOne[0].Activity != daySix[0].Activity {
		t.Errorf("day 6 morning activity = %q, want day 1's %q", daySix[0].Activity, dayOne[0].Activity)
	}
}

func TestFallbackActivitiesUseDestination(t *testing.T) {
	activities := defaultActivities("Hampi", 1)
	if activities[0].Activity != "Historic Hampi Walking Tour" {
		t.Errorf("day 1 morning activity = %q, want %q", activities[0].Activity, "Historic Hampi Walking Tour")
	}
	if activities[0].Location != "Central Hampi" {
		t.Errorf("day 1 morning location = %q, want %q", activities[0].Location, "Central Hampi")
	}
}

func TestDefaultMealsVegetarianPreference(t *testing.T) {
	veg := defaultMeals(true)
	for _, meal := range veg {
		if !meal.VegetarianFriendly {
			t.Errorf("meal %q not flagged vegetarian", meal.Restaurant)
		}
		if meal.Restaurant[len(meal.Restaurant)-len(" (Vegetarian)"):] != " (Vegetarian)" {
			t.Errorf("meal %q missing vegetarian suffix", meal.Restaurant)
		}
	}

	nonVeg := defaultMeals(false)
	for _, meal := range nonVeg {
		if meal.VegetarianFriendly {
			t.Errorf("meal %q flagged vegetarian for non-vegetarian trip", meal.Restaurant)
		}
	}

	if len(veg) != 3 || len(nonVeg) != 3 {
		t.Errorf("meal counts = (%d, %d), want 3 each", len(veg), len(nonVeg))
	}
	if nonVeg[2].BookingRequired != true {
		t.Error("dinner should require booking")
	}
}

func TestDefaultEmergencyContacts(t *testing.T) {
	contacts := defaultEmergencyContacts()
	want := map[string]string{
		"tourist_helpline":  "1363",
		"police":            "100",
		"medical_emergency": "108",
		"fire_emergency":    "101",
	}
	if !reflect.DeepEqual(contacts, want) {
		t.Errorf("emergency contacts = %v, want %v", contacts, want)
	}
}
