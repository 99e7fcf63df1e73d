package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"craftquote/services"
	"craftquote/testhelpers"
)

func orderValues() url.Values {
	v := url.Values{}
	v.Set("client", "Ana")
	v.Set("item", "Beaded bracelet")
	v.Set("due_date", "2026-10-20")
	v.Set("total", "85,09")
	return v
}

func seedOrder(t *testing.T, d *Deps, id string, status services.OrderStatus) {
	t.Helper()
	o := services.Order{
		ID:      id,
		Client:  "Ioana",
		Item:    "Clay mug",
		DueDate: time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
		Status:  status,
		Total:   120,
	}
	if err := d.Orders.Prepend(t.Context(), o); err != nil {
		t.Fatalf("prepend: %v", err)
	}
}

func TestDueRelative(t *testing.T) {
	tests := []struct {
		due  time.Time
		want string
	}{
		{time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), "today"},
		{time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), "1 day from now"},
		{time.Date(2026, time.October, 11, 0, 0, 0, 0, time.UTC), "3 days ago"},
	}
	for _, tt := range tests {
		if got := dueRelative(tt.due, fixedNow); got != tt.want {
			t.Errorf("dueRelative(%s) = %q, want %q", tt.due.Format(services.DueDateLayout), got, tt.want)
		}
	}
}

func TestHandleOrders_Empty(t *testing.T) {
	app, d := newTestDeps(t)

	rec := serve(t, app, HandleOrders(d), httptest.NewRequest(http.MethodGet, "/orders", nil))

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No orders yet.", `href="/orders/export"`, `<a href="/orders" class="active">`)
}

func TestHandleCreateOrder_Valid(t *testing.T) {
	app, d := newTestDeps(t)
	seedOrder(t, d, "older", services.StatusPlaced)

	rec := serve(t, app, HandleCreateOrder(d), formRequest(http.MethodPost, "/orders", orderValues()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHXTrigger(t, rec.Header().Get("HX-Trigger"), "success", "Order for Ana added")

	orders := d.Orders.All()
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	got := orders[0]
	if got.Client != "Ana" || got.Status != services.StatusPlaced || got.Total != 85.09 {
		t.Errorf("unexpected new order %+v", got)
	}
	if got.DueDate.Format(services.DueDateLayout) != "2026-10-20" {
		t.Errorf("unexpected due date %s", got.DueDate)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Ana", "85.09 lei", "6 days from now", "Mark as In progress")

	flush(t, d)
	row, err := app.FindFirstRecordByData("kv_store", "key", "orders")
	if err != nil {
		t.Fatalf("expected orders row: %v", err)
	}
	if !strings.Contains(row.GetString("value"), `"client":"Ana"`) {
		t.Errorf("expected persisted order, got %s", row.GetString("value"))
	}
}

func TestHandleCreateOrder_DefaultsDueDateToToday(t *testing.T) {
	app, d := newTestDeps(t)
	v := orderValues()
	v.Del("due_date")

	serve(t, app, HandleCreateOrder(d), formRequest(http.MethodPost, "/orders", v))

	orders := d.Orders.All()
	if len(orders) != 1 || orders[0].DueDate.Format(services.DueDateLayout) != "2026-10-14" {
		t.Fatalf("expected one order due today, got %+v", orders)
	}
}

func TestHandleCreateOrder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"missing client", "client", "", "This field is required"},
		{"missing total", "total", " ", "This field is required"},
		{"bad due date", "due_date", "20.10.2026", "Use the YYYY-MM-DD format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newTestDeps(t)
			v := orderValues()
			v.Set(tt.field, tt.value)

			rec := serve(t, app, HandleCreateOrder(d), formRequest(http.MethodPost, "/orders", v))

			testhelpers.AssertHXTrigger(t, rec.Header().Get("HX-Trigger"), "warning", "highlighted fields")
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.message, `value="Beaded bracelet"`)
			if n := len(d.Orders.All()); n != 0 {
				t.Errorf("expected no order to be stored, got %d", n)
			}
		})
	}
}

func TestHandleAdvanceOrder(t *testing.T) {
	tests := []struct {
		from     services.OrderStatus
		want     services.OrderStatus
		label    string
		nextHint string
	}{
		{services.StatusPlaced, services.StatusInProgress, "In progress", "Mark as Delivered"},
		{services.StatusInProgress, services.StatusDelivered, "Delivered", "Mark as Paid"},
		{services.StatusDelivered, services.StatusPaid, "Paid", ""},
		{services.StatusPaid, services.StatusPaid, "Paid", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			app, d := newTestDeps(t)
			seedOrder(t, d, "o1", tt.from)
			req := httptest.NewRequest(http.MethodPost, "/orders/o1/advance", nil)
			req.SetPathValue("id", "o1")

			rec := serve(t, app, HandleAdvanceOrder(d), req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := d.Orders.All()[0].Status; got != tt.want {
				t.Errorf("expected status %s, got %s", tt.want, got)
			}
			body := rec.Body.String()
			testhelpers.AssertHTMLContains(t, body, `id="order-o1"`, tt.label)
			if tt.nextHint == "" {
				testhelpers.AssertHTMLNotContains(t, body, "Mark as")
			} else {
				testhelpers.AssertHTMLContains(t, body, tt.nextHint)
			}
		})
	}
}

func TestHandleAdvanceOrder_NotFound(t *testing.T) {
	app, d := newTestDeps(t)
	seedOrder(t, d, "o1", services.StatusPlaced)
	req := httptest.NewRequest(http.MethodPost, "/orders/nope/advance", nil)
	req.SetPathValue("id", "nope")

	rec := serve(t, app, HandleAdvanceOrder(d), req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if got := d.Orders.All()[0].Status; got != services.StatusPlaced {
		t.Errorf("expected untouched order, got %s", got)
	}
}

func TestHandleExportOrders(t *testing.T) {
	app, d := newTestDeps(t)
	seedOrder(t, d, "o1", services.StatusDelivered)

	rec := serve(t, app, HandleExportOrders(d), httptest.NewRequest(http.MethodGet, "/orders/export", nil))

	if ct := rec.Header().Get("Content-Type"); ct != services.MIMEXLSX {
		t.Errorf("unexpected Content-Type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "orders-20261014.xlsx") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("expected a zip-based xlsx body")
	}
}
