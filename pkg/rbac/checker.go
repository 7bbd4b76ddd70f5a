package rbac

import (
	"github.com/spooltrack/spooltrack/pkg/session"
)

// Deny reasons. Handlers map ReasonUnauthenticated to 401 and
// ReasonForbidden to 403.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Gate answers allow/deny for (caller, resource, action) against the policy
// table. Decisions are recomputed on every request from the live caller and
// the static table; there is no cache and no revocation list, so permission
// changes apply on the next request with no propagation delay.
type Gate struct {
	table Table
}

// NewGate creates a gate over the given table. A nil table uses DefaultTable.
func NewGate(table Table) *Gate {
	if table == nil {
		table = DefaultTable()
	}
	return &Gate{table: table}
}

// Authorize checks whether the caller may perform the action on the resource.
// A nil caller is an anonymous request.
func (g *Gate) Authorize(caller *session.Caller, resource Resource, action Action) Decision {
	entry, ok := g.table[Permission{Resource: resource, Action: action}]
	if !ok {
		// Deny-by-default: a pair no handler registered a policy for.
		if caller == nil {
			return deny(ReasonUnauthenticated)
		}
		return deny(ReasonForbidden)
	}

	if entry.Level == AccessAnonymous {
		return allow()
	}

	if caller == nil {
		return deny(ReasonUnauthenticated)
	}

	if entry.Level == AccessAuthenticated {
		return allow()
	}

	if entry.allows(caller.Role) {
		return allow()
	}

	return deny(ReasonForbidden)
}
