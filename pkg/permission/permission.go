// Package permission decides whether a caller may perform an operation.
// Rules are pure predicates over the caller, the HTTP method and, for
// object-level checks, the owner of the target resource. Endpoints attach
// one rule or an OR-composition of rules; when no rule grants access the
// answer is always deny.
package permission

import (
	"net/http"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r sits at or above threshold in the role
// hierarchy. Unknown roles rank below every valid role.
func (r Role) AtLeast(threshold Role) bool {
	return roleRank[r] >= roleRank[threshold]
}

// Caller is the authentication state of the requester. The zero value is
// an anonymous caller.
type Caller struct {
	Authenticated bool
	UserID        uuid.UUID
	Role          Role
	Superuser     bool
}

// Anonymous returns an unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

func (c Caller) isAdmin() bool {
	return c.Authenticated && (c.Role == RoleAdmin || c.Superuser)
}

func (c Caller) isStaff() bool {
	return c.Authenticated && (c.Role.AtLeast(RoleModerator) || c.Superuser)
}

// SafeMethod reports whether method is read-only.
func SafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Rule is a single permission class. Permits is the collection-level
// check, run before any resource is loaded. PermitsObject is the
// object-level check against a loaded resource's owner.
type Rule interface {
	Permits(c Caller, method string) bool
	PermitsObject(c Caller, method string, owner uuid.UUID) bool
}

// AdminOnly grants access to admins and superusers only.
type AdminOnly struct{}

func (AdminOnly) Permits(c Caller, method string) bool {
	return c.isAdmin()
}

func (AdminOnly) PermitsObject(c Caller, method string, owner uuid.UUID) bool {
	return c.isAdmin()
}

// AdminOrReadOnly grants safe methods to everyone and unsafe methods to
// admins and superusers.
type AdminOrReadOnly struct{}

func (AdminOrReadOnly) Permits(c Caller, method string) bool {
	return SafeMethod(method) || c.isAdmin()
}

func (AdminOrReadOnly) PermitsObject(c Caller, method string, owner uuid.UUID) bool {
	return SafeMethod(method) || c.isAdmin()
}

// ModeratorOrAuthorOrAuthenticated lets any authenticated caller through
// the collection-level check; anonymous callers are denied even for safe
// methods. At object level it allows safe methods, staff, and the owner.
type ModeratorOrAuthorOrAuthenticated struct{}

func (ModeratorOrAuthorOrAuthenticated) Permits(c Caller, method string) bool {
	return c.Authenticated
}

func (ModeratorOrAuthorOrAuthenticated) PermitsObject(c Caller, method string, owner uuid.UUID) bool {
	if SafeMethod(method) {
		return true
	}
	if c.isStaff() {
		return true
	}
	return c.Authenticated && c.UserID == owner
}

// AuthorOrStaffOrReadOnly allows safe methods unconditionally; unsafe
// methods require the owner or staff.
type AuthorOrStaffOrReadOnly struct{}

func (AuthorOrStaffOrReadOnly) Permits(c Caller, method string) bool {
	return SafeMethod(method)
}

func (AuthorOrStaffOrReadOnly) PermitsObject(c Caller, method string, owner uuid.UUID) bool {
	if SafeMethod(method) {
		return true
	}
	if c.Authenticated && c.UserID == owner {
		return true
	}
	return c.isStaff()
}

// anyOf composes rules with short-circuit OR. A member grants object
// access only if it also passes its own collection-level check, so a rule
// cannot be bypassed by pairing it with a more permissive one.
type anyOf struct {
	rules []Rule
}

// AnyOf combines rules so a request is allowed if any member allows it.
// With no members every request is denied.
func AnyOf(rules ...Rule) Rule {
	return anyOf{rules: rules}
}

func (a anyOf) Permits(c Caller, method string) bool {
	for _, r := range a.rules {
		if r.Permits(c, method) {
			return true
		}
	}
	return false
}

func (a anyOf) PermitsObject(c Caller, method string, owner uuid.UUID) bool {
	for _, r := range a.rules {
		if r.Permits(c, method) && r.PermitsObject(c, method, owner) {
			return true
		}
	}
	return false
}
