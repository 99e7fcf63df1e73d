package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const LastClientKey contextKey = "lastClient"

const lastClientCookie = "last_client"

// GetLastClient returns the client name remembered from the previous quote.
func GetLastClient(r *http.Request) string {
	if val, ok := r.Context().Value(LastClientKey).(string); ok {
		return val
	}
	return ""
}

// LastClientMiddleware reads the "last_client" cookie and stores the name in
// the request context so the calculator can prefill it.
func LastClientMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		loadLastClient(e)
		return e.Next()
	}
}

func loadLastClient(e *core.RequestEvent) {
	cookie, err := e.Request.Cookie(lastClientCookie)
	if err != nil || cookie.Value == "" {
		return
	}
	client, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return
	}
	ctx := context.WithValue(e.Request.Context(), LastClientKey, client)
	e.Request = e.Request.WithContext(ctx)
}

// rememberClient keeps a non-empty client name for a month.
func rememberClient(e *core.RequestEvent, client string) {
	client = strings.TrimSpace(client)
	if client == "" {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     lastClientCookie,
		Value:    url.QueryEscape(client),
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
