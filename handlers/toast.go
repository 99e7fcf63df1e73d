package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"
)

// SetToast sets the HX-Trigger response header to show a toast notification
// on the client via HTMX, merging with any HX-Trigger already present. It
// also sets a flash cookie so toasts survive regular (non-HTMX) redirects.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}

	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = payload

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(payload)
	if err == nil {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "flash_toast",
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // read by the page script
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ErrorToast sets an error toast and tells HTMX not to swap the response.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

// toastNotifier shows sharing notices as toasts on the current response.
type toastNotifier struct {
	e *core.RequestEvent
}

func (n toastNotifier) Notify(ctx context.Context, level, message string) {
	SetToast(n.e, level, message)
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// render writes content alone for HTMX requests and the full page otherwise.
func render(e *core.RequestEvent, page, content templ.Component) error {
	component := page
	if isHTMX(e) {
		component = content
	}
	return component.Render(e.Request.Context(), e.Response)
}
