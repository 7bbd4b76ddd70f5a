package rbac

import (
	"net/http"

	"github.com/spooltrack/spooltrack/pkg/httputil"
	"github.com/spooltrack/spooltrack/pkg/observability"
	"github.com/spooltrack/spooltrack/pkg/session"
)

// Require creates middleware that enforces the policy for (resource, action).
// Deny(unauthenticated) maps to 401, Deny(forbidden) to 403; both carry the
// same generic message so the body does not leak which roles exist.
func (g *Gate) Require(resource Resource, action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := session.CallerFromContext(r.Context())

			decision := g.Authorize(caller, resource, action)
			if !decision.Allowed {
				observability.FromContext(r.Context()).WithFields(map[string]interface{}{
					"resource": string(resource),
					"action":   string(action),
					"reason":   decision.Reason,
				}).Debug("request denied")

				switch decision.Reason {
				case ReasonUnauthenticated:
					httputil.WriteUnauthorized(w)
				default:
					httputil.WriteForbidden(w)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
