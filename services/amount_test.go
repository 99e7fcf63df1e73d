package services

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "42.75", 42.75},
		{"decimal comma", "12,5", 12.5},
		{"padded string", "  3 ", 3},
		{"empty string", "", 0},
		{"garbage", "abc", 0},
		{"trailing garbage", "12abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"nan string", "NaN", 0},
		{"negative", "-4", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got != tt.expect {
				t.Errorf("ParseAmount(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	raw := `{"id":"r1","name":"Soap","materialCost":"8,5","laborMinutes":"x","hourlyRate":40,"markupPct":null,"vatPct":"19"}`

	var r Recipe
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if r.MaterialCost != 8.5 {
		t.Errorf("MaterialCost = %v, want 8.5", r.MaterialCost)
	}
	if r.LaborMinutes != 0 {
		t.Errorf("LaborMinutes = %v, want 0", r.LaborMinutes)
	}
	if r.HourlyRate != 40 {
		t.Errorf("HourlyRate = %v, want 40", r.HourlyRate)
	}
	if r.MarkupPct != 0 {
		t.Errorf("MarkupPct = %v, want 0", r.MarkupPct)
	}
	if r.VATPct != 19 {
		t.Errorf("VATPct = %v, want 19", r.VATPct)
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Recipe{ID: "r1", MaterialCost: 30, VATPct: Amount(math.NaN())})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"r1","name":"","materialCost":30,"laborMinutes":0,"hourlyRate":0,"markupPct":0,"vatPct":0}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
