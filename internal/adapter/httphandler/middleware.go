package httphandler

import (
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
)

// AllowJSON rejects bodies that are not application/json.
// Parameters such as charset are accepted.
func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, "invalid media type")
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// A SessionConfig used for setup [Session].
type SessionConfig struct {
	CookieName string
	MaxAge     int
	Secure     bool
}

// Session puts the browser session id into the request context,
// issuing a new session cookie when the request has no valid one.
func Session(config SessionConfig, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(config.CookieName); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     config.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   config.MaxAge,
				HttpOnly: true,
				Secure:   config.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(domain.WithSessionID(r.Context(), id)))
	}
	return http.HandlerFunc(hf)
}
