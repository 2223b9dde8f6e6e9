package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/mcoot/puppybowl-roster/internal/web/templates/layout"
)

type contextKey string

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash returns the flash message for this request, or nil
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash stores a message to show on the next page load
func SetFlash(w http.ResponseWriter, flashType, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(flashType + ":" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash moves a pending flash cookie into the request context and clears it
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			if cookie, err := r.Cookie(flashCookieName); err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseFlash decodes "type:message"; without a type the message is info
func parseFlash(value string) *layout.FlashMessage {
	if decoded, err := url.QueryUnescape(value); err == nil {
		value = decoded
	}
	if flashType, message, ok := strings.Cut(value, ":"); ok {
		return &layout.FlashMessage{Type: flashType, Message: message}
	}
	return &layout.FlashMessage{Type: "info", Message: value}
}
