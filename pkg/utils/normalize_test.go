package utils

import "testing"

func TestExtractCost(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOk bool
	}{
		{"₹200-400", 200, true},
		{"₹300 per person", 300, true},
		{"1500", 1500, true},
		{"approx ₹50-150 per day", 50, true},
		{"free", 0, false},
		{"", 0, false},
		{"varies", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractCost(tt.input)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("ExtractCost(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOk bool
	}{
		{"09:00 AM", "09:00:00", true},
		{"07:30 PM", "19:30:00", true},
		{"12:00 PM", "12:00:00", true},
		{"12:15 AM", "00:15:00", true},
		{"14:30", "14:30:00", true},
		{"around 6:45PM", "18:45:00", true},
		{"morning", "", false},
		{"", "", false},
		{"25:00", "", false},
		{"10:75", "", false},
	}

	for _, tt := range tests {
		got, ok := ExtractTime(tt.input)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("ExtractTime(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOk)
		}
	}
}
