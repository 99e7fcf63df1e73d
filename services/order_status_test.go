package services

import "testing"

func TestOrderStatus_Advance(t *testing.T) {
	tests := []struct {
		from OrderStatus
		want OrderStatus
	}{
		{StatusPlaced, StatusInProgress},
		{StatusInProgress, StatusDelivered},
		{StatusDelivered, StatusPaid},
		{StatusPaid, StatusPaid},
		{OrderStatus("bogus"), StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			if got := tt.from.Advance(); got != tt.want {
				t.Errorf("%q.Advance() = %q, want %q", tt.from, got, tt.want)
			}
		})
	}
}

func TestOrderStatus_FullCycle(t *testing.T) {
	s := StatusPlaced.Advance().Advance().Advance().Advance()
	if s != StatusPaid {
		t.Errorf("four advances from placed = %q, want paid", s)
	}
	if !s.IsTerminal() {
		t.Error("paid should be terminal")
	}
	if StatusPaid.Advance() != StatusPaid {
		t.Error("paid must map to itself")
	}
}

func TestOrderStatus_NeverRegresses(t *testing.T) {
	index := make(map[OrderStatus]int)
	for i, s := range OrderStatuses {
		index[s] = i
	}
	for _, s := range OrderStatuses {
		next := s.Advance()
		if index[next] < index[s] {
			t.Errorf("%q advanced backwards to %q", s, next)
		}
		if index[next]-index[s] > 1 {
			t.Errorf("%q skipped ahead to %q", s, next)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input string
		want  OrderStatus
	}{
		{"placed", StatusPlaced},
		{"in_progress", StatusInProgress},
		{"delivered", StatusDelivered},
		{"paid", StatusPaid},
		{"", StatusPlaced},
		{"PAID", StatusPlaced},
	}
	for _, tt := range tests {
		if got := ParseOrderStatus(tt.input); got != tt.want {
			t.Errorf("ParseOrderStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOrderStatus_Label(t *testing.T) {
	if got := StatusInProgress.Label(); got != "In progress" {
		t.Errorf("Label() = %q", got)
	}
	if got := OrderStatus("unknown").Label(); got != "Placed" {
		t.Errorf("unknown Label() = %q, want Placed", got)
	}
}
