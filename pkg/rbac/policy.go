package rbac

import (
	"github.com/spooltrack/spooltrack/pkg/session"
)

// AccessLevel controls who may perform an action before role membership is checked
type AccessLevel int

const (
	// AccessRoles restricts the action to the entry's role set
	AccessRoles AccessLevel = iota
	// AccessAuthenticated allows any signed-in caller regardless of role
	AccessAuthenticated
	// AccessAnonymous allows any caller, including requests with no session
	AccessAnonymous
)

// Entry is the allowed-roles rule for one (resource, action) pair
type Entry struct {
	Level AccessLevel
	Roles []session.Role
}

// allows reports whether the entry's role set contains the given role
func (e Entry) allows(role session.Role) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Table is the static policy mapping. It is built once at startup and read
// concurrently without locking; a pair with no entry is denied by default.
type Table map[Permission]Entry

// DefaultTable builds the policy table:
//
//   - read: any authenticated caller
//   - create, update: admin and manager
//   - delete: admin only, except spool delete which also allows manager
func DefaultTable() Table {
	table := make(Table, len(Resources())*len(Actions()))

	writers := []session.Role{session.RoleAdmin, session.RoleManager}

	for _, resource := range Resources() {
		table[Permission{resource, ActionRead}] = Entry{Level: AccessAuthenticated}
		table[Permission{resource, ActionCreate}] = Entry{Level: AccessRoles, Roles: writers}
		table[Permission{resource, ActionUpdate}] = Entry{Level: AccessRoles, Roles: writers}
		table[Permission{resource, ActionDelete}] = Entry{Level: AccessRoles, Roles: []session.Role{session.RoleAdmin}}
	}

	// Shop-floor managers retire spools directly; every other delete stays admin-only.
	table[Permission{ResourceSpool, ActionDelete}] = Entry{Level: AccessRoles, Roles: writers}

	return table
}
