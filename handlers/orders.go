package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pocketbase/pocketbase/core"

	"craftquote/metrics"
	"craftquote/services"
	"craftquote/sharing"
	"craftquote/templates"
)

var errOrderNotFound = errors.New("order not found")

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dueRelative describes the due date relative to today, e.g. "today" or
// "3 days from now".
func dueRelative(due, now time.Time) string {
	due, today := dateOnly(due), dateOnly(now)
	if due.Equal(today) {
		return "today"
	}
	return humanize.RelTime(due, today, "ago", "from now")
}

func (d *Deps) orderView(o services.Order) templates.OrderView {
	status := services.ParseOrderStatus(string(o.Status))
	view := templates.OrderView{
		ID:          o.ID,
		Client:      o.Client,
		Item:        o.Item,
		DueDate:     o.DueDate.Format(services.DueDateLayout),
		DueRelative: dueRelative(o.DueDate, d.Now()),
		Status:      string(status),
		StatusLabel: status.Label(),
		Total:       services.FormatMoney(o.Total.Float(), d.Config.Currency),
	}
	if !status.IsTerminal() {
		view.NextLabel = status.Advance().Label()
	}
	return view
}

func (d *Deps) ordersPage(form templates.OrderFormData) templates.OrdersPageData {
	orders := d.Orders.All()
	views := make([]templates.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, d.orderView(o))
	}
	return templates.OrdersPageData{Orders: views, Form: form}
}

// HandleOrders lists orders, newest first.
func HandleOrders(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := d.ordersPage(templates.OrderFormData{})
		return render(e, templates.OrdersPage(data), templates.OrdersContent(data))
	}
}

// HandleCreateOrder validates the submission and prepends a placed order.
// Invalid input is re-rendered with field errors and nothing is stored.
func HandleCreateOrder(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form := services.OrderForm{
			Client:  e.Request.FormValue("client"),
			Item:    e.Request.FormValue("item"),
			DueDate: e.Request.FormValue("due_date"),
			Total:   e.Request.FormValue("total"),
		}

		order, err := services.NewOrder(form, d.Now())
		if err != nil {
			var ve *services.ValidationError
			if !errors.As(err, &ve) {
				log.Printf("orders: failed to build order: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Could not save order")
			}
			SetToast(e, sharing.LevelWarning, "Please fix the highlighted fields")
			data := d.ordersPage(templates.OrderFormData{
				Client:  form.Client,
				Item:    form.Item,
				DueDate: form.DueDate,
				Total:   form.Total,
				Errors:  ve.Fields,
			})
			return templates.OrdersContent(data).Render(e.Request.Context(), e.Response)
		}

		if err := d.Orders.Prepend(e.Request.Context(), order); err != nil {
			log.Printf("orders: failed to save order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save order")
		}
		SetToast(e, sharing.LevelSuccess, fmt.Sprintf("Order for %s added", order.Client))
		data := d.ordersPage(templates.OrderFormData{})
		return render(e, templates.OrdersPage(data), templates.OrdersContent(data))
	}
}

// HandleAdvanceOrder moves an order to its next status and returns the
// updated card.
func HandleAdvanceOrder(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var advanced services.Order
		err := d.Orders.Update(e.Request.Context(), func(orders []services.Order) ([]services.Order, error) {
			next, ok := services.AdvanceOrder(orders, id)
			if !ok {
				return nil, errOrderNotFound
			}
			for _, o := range next {
				if o.ID == id {
					advanced = o
				}
			}
			return next, nil
		})
		if errors.Is(err, errOrderNotFound) {
			return ErrorToast(e, http.StatusNotFound, "Order not found")
		}
		if err != nil {
			log.Printf("orders: failed to advance %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not update order")
		}

		metrics.OrderAdvances.WithLabelValues(string(advanced.Status)).Inc()
		return templates.OrderCard(d.orderView(advanced)).Render(e.Request.Context(), e.Response)
	}
}

// HandleExportOrders downloads all orders as an Excel workbook.
func HandleExportOrders(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.GenerateOrdersExcel(d.Orders.All(), d.Config.Currency)
		if err != nil {
			log.Printf("orders: failed to generate Excel: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}
		metrics.QuotesRendered.WithLabelValues(metrics.FormatXLSX).Inc()

		filename := fmt.Sprintf("orders-%s.xlsx", d.Now().Format("20060102"))
		e.Response.Header().Set("Content-Type", services.MIMEXLSX)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		if _, err := e.Response.Write(data); err != nil {
			log.Printf("orders: failed to write Excel response: %v", err)
		}
		return nil
	}
}
