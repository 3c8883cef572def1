package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jobvault/jobs-api/pkg/requestid"
)

// RequestID takes the request ID from the x-request-id header, or from chi's
// own RequestID middleware when the header is absent, generating a fresh one
// as a last resort, and injects it into the request context so every layer
// can tag its logs with it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("x-request-id")
		if reqID == "" {
			reqID = middleware.GetReqID(r.Context())
		}
		if reqID == "" {
			reqID = requestid.Generate()
		}

		ctx := requestid.ToContext(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
