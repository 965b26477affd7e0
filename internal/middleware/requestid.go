package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns every request a unique id, echoed in the X-Request-ID
// response header. Clients may supply their own id and it is kept, which lets
// the gateway correlate calls across the forum and user services.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
