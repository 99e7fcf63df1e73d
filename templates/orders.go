package templates

import (
	"context"

	"github.com/a-h/templ"
)

type OrderView struct {
	ID          string
	Client      string
	Item        string
	DueDate     string
	DueRelative string
	Status      string
	StatusLabel string
	NextLabel   string // empty once the order is paid
	Total       string
}

type OrderFormData struct {
	Client  string
	Item    string
	DueDate string
	Total   string
	Errors  map[string]string
}

type OrdersPageData struct {
	Orders []OrderView
	Form   OrderFormData
}

func OrdersPage(data OrdersPageData) templ.Component {
	return Page("Orders", TabOrders, OrdersContent(data))
}

func OrdersContent(data OrdersPageData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Orders</h1>`)
		h.component(ctx, OrderForm(data.Form))
		h.raw(`<div class="actions"><a class="button secondary" href="/orders/export">Export to Excel</a></div>`)
		h.component(ctx, OrderList(data.Orders))
	})
}

func OrderForm(f OrderFormData) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<form class="card" id="order-form" hx-post="/orders" hx-target="#content">`)
		h.raw(`<div class="grid">`)
		h.input("Client", "client", f.Client, "text", f.Errors["client"], "")
		h.input("Item", "item", f.Item, "text", f.Errors["item"], "")
		h.input("Due date", "due_date", f.DueDate, "date", f.Errors["duedate"], "")
		h.input("Total", "total", f.Total, "text", f.Errors["total"], `inputmode="decimal"`)
		h.raw(`</div><div class="actions"><button type="submit">Add order</button></div></form>`)
	})
}

func OrderList(orders []OrderView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="orders">`)
		if len(orders) == 0 {
			h.raw(`<p class="muted">No orders yet.</p>`)
		}
		for _, o := range orders {
			h.component(ctx, OrderCard(o))
		}
		h.raw(`</section>`)
	})
}

func OrderCard(o OrderView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<article class="card" id="order-`)
		h.text(o.ID)
		h.raw(`"><strong>`)
		h.text(o.Client)
		h.raw(`</strong> <span class="badge status-`)
		h.text(o.Status)
		h.raw(`">`)
		h.text(o.StatusLabel)
		h.raw(`</span><p>`)
		h.text(o.Item)
		h.raw(`</p><p class="muted">Due `)
		h.text(o.DueDate)
		if o.DueRelative != "" {
			h.raw(` (`)
			h.text(o.DueRelative)
			h.raw(`)`)
		}
		h.raw(` · `)
		h.text(o.Total)
		h.raw(`</p>`)
		if o.NextLabel != "" {
			h.raw(`<button class="secondary" hx-post="/orders/`)
			h.text(o.ID)
			h.raw(`/advance" hx-target="#order-`)
			h.text(o.ID)
			h.raw(`" hx-swap="outerHTML">Mark as `)
			h.text(o.NextLabel)
			h.raw(`</button>`)
		}
		h.raw(`</article>`)
	})
}
