package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kinohub/internal/data/entity"
	"kinohub/pkg/permission"
	"kinohub/pkg/token"
	"kinohub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubUserRepo serves a single user by ID.
type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CountAll(ctx context.Context, search string) (int64, error) { return 0, nil }

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) UpdateConfirmationCode(ctx context.Context, id uuid.UUID, codeHash string) error {
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func callerEcho(t *testing.T, got *permission.Caller) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = utils.GetCallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func issueFor(t *testing.T, tokens *token.Manager, user *entity.User) string {
	t.Helper()
	signed, err := tokens.Issue(token.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	require.NoError(t, err)
	return signed
}

func testUser() *entity.User {
	return &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "alice",
		Role:     permission.RoleUser,
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	tokens := token.NewManager("secret", 1)
	repo := &stubUserRepo{}

	var got permission.Caller
	handler := Authenticate(tokens, repo, zap.NewNop())(callerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	tokens := token.NewManager("secret", 1)
	user := testUser()
	repo := &stubUserRepo{user: user}

	var got permission.Caller
	handler := Authenticate(tokens, repo, zap.NewNop())(callerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, tokens, user))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.Authenticated)
	assert.Equal(t, user.ID, got.UserID)
}

// The caller carries the role currently stored, not the role at issue
// time.
func TestAuthenticateReloadsRole(t *testing.T) {
	tokens := token.NewManager("secret", 1)
	user := testUser()
	repo := &stubUserRepo{user: user}

	signed := issueFor(t, tokens, user)
	user.Role = permission.RoleModerator

	var got permission.Caller
	handler := Authenticate(tokens, repo, zap.NewNop())(callerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, permission.RoleModerator, got.Role)
}

func TestAuthenticateDeletedUser(t *testing.T) {
	tokens := token.NewManager("secret", 1)
	user := testUser()
	repo := &stubUserRepo{} // user no longer exists

	var got permission.Caller
	handler := Authenticate(tokens, repo, zap.NewNop())(callerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, tokens, user))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMaybeAuthenticateAnonymous(t *testing.T) {
	tokens := token.NewManager("secret", 1)
	repo := &stubUserRepo{}

	var got permission.Caller
	handler := MaybeAuthenticate(tokens, repo, zap.NewNop())(callerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, got.Authenticated)
}

// A token that is present but invalid is rejected, not downgraded.
func TestMaybeAuthenticateBadToken(t *testing.T) {
	tokens := token.NewManager("secret", 1)
	repo := &stubUserRepo{}

	var got permission.Caller
	handler := MaybeAuthenticate(tokens, repo, zap.NewNop())(callerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPermitAnonymousGets401(t *testing.T) {
	handler := Permit(permission.AdminOnly{})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPermitAuthenticatedGets403(t *testing.T) {
	handler := Permit(permission.AdminOnly{})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	caller := permission.Caller{Authenticated: true, UserID: uuid.New(), Role: permission.RoleUser}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetCallerContext(req.Context(), caller))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
