package permission

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	ownerID = uuid.New()
	otherID = uuid.New()
	adminC  = Caller{Authenticated: true, UserID: otherID, Role: RoleAdmin}
	modC    = Caller{Authenticated: true, UserID: otherID, Role: RoleModerator}
	userC   = Caller{Authenticated: true, UserID: otherID, Role: RoleUser}
	ownerC  = Caller{Authenticated: true, UserID: ownerID, Role: RoleUser}
	superC  = Caller{Authenticated: true, UserID: otherID, Role: RoleUser, Superuser: true}
	anonymC = Anonymous()
)

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleModerator.AtLeast(RoleModerator))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, Role("bogus").AtLeast(RoleUser))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleModerator.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestAdminOnly(t *testing.T) {
	rule := AdminOnly{}

	tests := []struct {
		name   string
		caller Caller
		want   bool
	}{
		{"admin allowed", adminC, true},
		{"superuser allowed", superC, true},
		{"moderator denied", modC, false},
		{"user denied", userC, false},
		{"anonymous denied", anonymC, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Permits(tt.caller, http.MethodGet))
			assert.Equal(t, tt.want, rule.Permits(tt.caller, http.MethodPost))
		})
	}
}

func TestAdminOrReadOnly(t *testing.T) {
	rule := AdminOrReadOnly{}

	assert.True(t, rule.Permits(anonymC, http.MethodGet))
	assert.True(t, rule.Permits(userC, http.MethodGet))
	assert.False(t, rule.Permits(anonymC, http.MethodPost))
	assert.False(t, rule.Permits(userC, http.MethodDelete))
	assert.False(t, rule.Permits(modC, http.MethodPost))
	assert.True(t, rule.Permits(adminC, http.MethodPost))
	assert.True(t, rule.Permits(superC, http.MethodDelete))
}

func TestModeratorOrAuthorOrAuthenticated(t *testing.T) {
	rule := ModeratorOrAuthorOrAuthenticated{}

	// Collection level: authentication is all that matters, even for GET.
	assert.False(t, rule.Permits(anonymC, http.MethodGet))
	assert.True(t, rule.Permits(userC, http.MethodGet))
	assert.True(t, rule.Permits(userC, http.MethodPost))

	// Object level.
	assert.True(t, rule.PermitsObject(anonymC, http.MethodGet, ownerID))
	assert.True(t, rule.PermitsObject(ownerC, http.MethodPatch, ownerID))
	assert.False(t, rule.PermitsObject(userC, http.MethodPatch, ownerID))
	assert.True(t, rule.PermitsObject(modC, http.MethodDelete, ownerID))
	assert.True(t, rule.PermitsObject(superC, http.MethodDelete, ownerID))
}

func TestAuthorOrStaffOrReadOnly(t *testing.T) {
	rule := AuthorOrStaffOrReadOnly{}

	assert.True(t, rule.Permits(anonymC, http.MethodGet))
	assert.False(t, rule.Permits(anonymC, http.MethodPost))
	assert.False(t, rule.Permits(userC, http.MethodPost))

	assert.True(t, rule.PermitsObject(anonymC, http.MethodGet, ownerID))
	assert.True(t, rule.PermitsObject(ownerC, http.MethodDelete, ownerID))
	assert.False(t, rule.PermitsObject(userC, http.MethodDelete, ownerID))
	assert.True(t, rule.PermitsObject(modC, http.MethodPatch, ownerID))
	assert.True(t, rule.PermitsObject(adminC, http.MethodPatch, ownerID))
}

func TestAnyOfDefaultDeny(t *testing.T) {
	rule := AnyOf()

	assert.False(t, rule.Permits(adminC, http.MethodGet))
	assert.False(t, rule.PermitsObject(adminC, http.MethodGet, ownerID))
}

func TestAnyOfContentRule(t *testing.T) {
	rule := AnyOf(ModeratorOrAuthorOrAuthenticated{}, AuthorOrStaffOrReadOnly{})

	// Anonymous reads pass through the read-only member.
	assert.True(t, rule.Permits(anonymC, http.MethodGet))
	// Anonymous writes fail both members.
	assert.False(t, rule.Permits(anonymC, http.MethodPost))
	// Any authenticated caller may write at collection level.
	assert.True(t, rule.Permits(userC, http.MethodPost))

	// Object level: the author may modify their own resource.
	assert.True(t, rule.PermitsObject(ownerC, http.MethodPatch, ownerID))
	// Another plain user may not.
	assert.False(t, rule.PermitsObject(userC, http.MethodPatch, ownerID))
	// Staff may moderate.
	assert.True(t, rule.PermitsObject(modC, http.MethodDelete, ownerID))
	// Anonymous object writes stay denied even though a member grants
	// safe-method object access: the member's collection check gates it.
	assert.False(t, rule.PermitsObject(anonymC, http.MethodDelete, ownerID))
}
