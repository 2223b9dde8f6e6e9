package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/puppybowl-roster/internal/middleware"
)

// Recovery creates panic recovery middleware that answers with an HTML error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	if r.Header.Get("HX-Request") == "true" {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error | Puppy Bowl</title></head>
<body>
<h1>Internal Server Error</h1>
<p>Something went wrong fetching the roster.</p>
<p><a href="/">Back to the roster</a></p>
</body>
</html>`))
}
