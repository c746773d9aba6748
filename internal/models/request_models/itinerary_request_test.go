package request_models

import (
	"errors"
	"testing"

	"wanderplan/pkg/utils"
)

func TestToTripRequestValidation(t *testing.T) {
	valid := GenerateItineraryRequest{
		Destination: "Goa",
		StartDate:   "2025-07-01",
		EndDate:     "2025-07-03",
		Budget:      15000,
	}

	tests := []struct {
		name    string
		mutate  func(*GenerateItineraryRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *GenerateItineraryRequest) {},
		},
		{
			name:    "blank destination",
			mutate:  func(r *GenerateItineraryRequest) { r.Destination = "   " },
			wantErr: utils.ErrInvalidInput,
		},
		{
			name:    "zero budget",
			mutate:  func(r *GenerateItineraryRequest) { r.Budget = 0 },
			wantErr: utils.ErrInvalidBudget,
		},
		{
			name:    "negative budget",
			mutate:  func(r *GenerateItineraryRequest) { r.Budget = -100 },
			wantErr: utils.ErrInvalidBudget,
		},
		{
			name:    "malformed start date",
			mutate:  func(r *GenerateItineraryRequest) { r.StartDate = "01-07-2025" },
			wantErr: utils.ErrInvalidDateFormat,
		},
		{
			name:    "malformed end date",
			mutate:  func(r *GenerateItineraryRequest) { r.EndDate = "July 3rd" },
			wantErr: utils.ErrInvalidDateFormat,
		},
		{
			name: "end before start",
			mutate: func(r *GenerateItineraryRequest) {
				r.StartDate = "2025-07-03"
				r.EndDate = "2025-07-01"
			},
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name: "end equals start",
			mutate: func(r *GenerateItineraryRequest) {
				r.EndDate = r.StartDate
			},
			wantErr: utils.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := req.ToTripRequest()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ToTripRequest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTripRequestDerivedValues(t *testing.T) {
	req := GenerateItineraryRequest{
		Destination:  "  Goa  ",
		StartDate:    "2025-07-01",
		EndDate:      "2025-07-03",
		Budget:       15000,
		IsVegetarian: true,
	}

	trip, err := req.ToTripRequest()
	if err != nil {
		t.Fatalf("ToTripRequest() error = %v", err)
	}

	if trip.Destination != "Goa" {
		t.Errorf("destination = %q, want trimmed %q", trip.Destination, "Goa")
	}
	if got := trip.DurationDays(); got != 3 {
		t.Errorf("DurationDays() = %d, want 3", got)
	}
	if got := trip.BudgetPerDay(); got != 5000 {
		t.Errorf("BudgetPerDay() = %d, want 5000", got)
	}
	if got := trip.DateForDay(2).Format("2006-01-02"); got != "2025-07-02" {
		t.Errorf("DateForDay(2) = %q, want %q", got, "2025-07-02")
	}
	if !trip.Vegetarian {
		t.Error("vegetarian preference lost")
	}
}
