package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateOrdersExcel(t *testing.T) {
	due := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	orders := []Order{
		{ID: "o2", Client: "Maria", Item: "=cmd|' /C calc'!A0", DueDate: due, Status: StatusDelivered, Total: 120},
		{ID: "o1", Client: "Ana", Item: "Bracelet", DueDate: due, Status: StatusPlaced, Total: 85.09},
	}

	data, err := GenerateOrdersExcel(orders, "lei")
	if err != nil {
		t.Fatalf("GenerateOrdersExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer f.Close()

	cells := map[string]string{
		"A1": "Client",
		"E1": "Total",
		"A2": "Maria",
		"B2": "'=cmd|' /C calc'!A0",
		"C2": "2026-11-02",
		"D2": "Delivered",
		"A3": "Ana",
		"D3": "Placed",
		"D5": "Total:",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(ordersSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	raw, err := f.GetCellValue(ordersSheet, "E5", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(E5): %v", err)
	}
	if raw != "205.09" {
		t.Errorf("grand total = %q, want %q", raw, "205.09")
	}
}

func TestGenerateOrdersExcel_Empty(t *testing.T) {
	data, err := GenerateOrdersExcel(nil, "")
	if err != nil {
		t.Fatalf("GenerateOrdersExcel() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty workbook")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Bracelet", "Bracelet"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+40", "'+40"},
		{"@me", "'@me"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
