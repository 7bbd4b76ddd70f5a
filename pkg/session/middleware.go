package session

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/spooltrack/spooltrack/pkg/httputil"
	"github.com/spooltrack/spooltrack/pkg/observability"
)

// contextKey is the type for context keys to prevent collisions
type contextKey string

const callerKey contextKey = "caller"

// WithCaller stores the caller in the context
func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the caller established for this request, or nil
// when the request is anonymous.
func CallerFromContext(ctx context.Context) *Caller {
	caller, ok := ctx.Value(callerKey).(*Caller)
	if !ok {
		return nil
	}
	return caller
}

// Middleware resolves the bearer token to a caller on every request.
// A missing header, malformed token, or unknown/expired session leaves the
// request anonymous; the authorization gate decides whether anonymous access
// is acceptable for the route. Only a store failure aborts the request.
type Middleware struct {
	store Store
}

// NewMiddleware creates session-resolution middleware over a store
func NewMiddleware(store Store) *Middleware {
	return &Middleware{store: store}
}

// Handler wraps an HTTP handler with session resolution
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		if err := ValidateTokenFormat(token); err != nil {
			observability.FromContext(r.Context()).WithError(err).Debug("ignoring malformed session token")
			next.ServeHTTP(w, r)
			return
		}

		caller, err := m.store.Lookup(r.Context(), token)
		if errors.Is(err, ErrNoSession) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			httputil.WriteUnexpected(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
