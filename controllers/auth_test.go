package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/kv"
	"github.com/tnavInter19/twitter-backend/middleware"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/service"
	"github.com/tnavInter19/twitter-backend/token"
)

func init() {
	gin.SetMode(gin.TestMode)
	binding.Validator = new(forms.DefaultValidator)
}

// stubUsers is a minimal in-memory db.Users for routing-level tests.
type stubUsers struct {
	mu    sync.Mutex
	users map[models.UserID]models.User
}

var _ db.Users = (*stubUsers)(nil)

func newStubUsers() *stubUsers {
	return &stubUsers{users: map[models.UserID]models.User{}}
}

func (s *stubUsers) CreateUser(_ context.Context, user db.CreateUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, db.ErrDuplicate
		}
	}

	created := models.User{
		ID:       bson.NewObjectID(),
		Name:     user.Name,
		Email:    user.Email,
		Username: user.Username,
		Password: user.PwdHash,
	}
	s.users[created.ID] = created
	return created, nil
}

func (s *stubUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, db.ErrNotFound
}

func (s *stubUsers) FindUserByID(_ context.Context, id models.UserID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	return user, nil
}

func (s *stubUsers) UpdateUsername(_ context.Context, id models.UserID, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	user.Username = username
	s.users[id] = user
	return user, nil
}

func (s *stubUsers) DeleteUser(_ context.Context, id models.UserID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

func newAuthRouter() *gin.Engine {
	ledger := kv.NewLedger(kv.NewMemory())
	tokens := token.NewIssuer("access-secret", "refresh-secret", "test-issuer", time.Minute, time.Hour)
	auth := NewAuthController(service.NewAuthService(newStubUsers(), ledger, tokens))

	r := gin.New()
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)
	v1.DELETE("/auth/logout", middleware.RequireAuth(tokens, ledger), auth.Logout)
	v1.POST("/auth/refresh", middleware.RequireClaims(tokens), auth.Refresh)

	return r
}

func do(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{
	"email": "alice@example.com",
	"name": "Alice",
	"username": "alice",
	"password": "secret-password"
}`

func register(t *testing.T, r *gin.Engine) models.UserAndCredentials {
	t.Helper()

	w := do(r, http.MethodPost, "/api/v1/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var creds models.UserAndCredentials
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creds))
	require.NotEmpty(t, creds.Token)
	require.NotEmpty(t, creds.Refresh)
	return creds
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthRouter()

	creds := register(t, r)
	require.Equal(t, "alice@example.com", creds.User.Email)

	// The password hash must never appear in the response.
	require.NotContains(t, creds.User.Password, "secret")

	w := do(r, http.MethodPost, "/api/v1/auth/register", registerBody, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists!")
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter()

	w := do(r, http.MethodPost, "/api/v1/auth/register", `{
		"email": "not-an-email",
		"name": "Alice",
		"username": "alice",
		"password": "secret-password"
	}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Please enter a valid email")

	w = do(r, http.MethodPost, "/api/v1/auth/register", `{
		"email": "alice@example.com",
		"name": "Alice",
		"username": "alice",
		"password": "short"
	}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "between 6 and 50")
}

func TestLoginEndpoint(t *testing.T) {
	r := newAuthRouter()
	register(t, r)

	w := do(r, http.MethodPost, "/api/v1/auth/login", `{
		"email": "alice@example.com",
		"password": "secret-password"
	}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{
		"email": "alice@example.com",
		"password": "wrong-password"
	}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshEndpoint(t *testing.T) {
	r := newAuthRouter()
	creds := register(t, r)

	body := `{"email": "alice@example.com", "refreshToken": "` + creds.Refresh + `"}`

	w := do(r, http.MethodPost, "/api/v1/auth/refresh", body, creds.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var renewed models.UserAndCredentials
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &renewed))
	require.NotEqual(t, creds.Token, renewed.Token)

	// The consumed refresh token cannot be exchanged twice.
	w = do(r, http.MethodPost, "/api/v1/auth/refresh", body, creds.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshEmailMismatch(t *testing.T) {
	r := newAuthRouter()
	creds := register(t, r)

	body := `{"email": "mallory@example.com", "refreshToken": "` + creds.Refresh + `"}`

	w := do(r, http.MethodPost, "/api/v1/auth/refresh", body, creds.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// The rejected attempt must not burn the refresh token.
	body = `{"email": "alice@example.com", "refreshToken": "` + creds.Refresh + `"}`
	w = do(r, http.MethodPost, "/api/v1/auth/refresh", body, creds.Token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshWithoutAccessToken(t *testing.T) {
	r := newAuthRouter()
	creds := register(t, r)

	body := `{"email": "alice@example.com", "refreshToken": "` + creds.Refresh + `"}`

	w := do(r, http.MethodPost, "/api/v1/auth/refresh", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	r := newAuthRouter()
	creds := register(t, r)

	w := do(r, http.MethodDelete, "/api/v1/auth/logout", "", creds.Token)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The revoked pair no longer passes the strict gate.
	w = do(r, http.MethodDelete, "/api/v1/auth/logout", "", creds.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Nor can it be refreshed.
	body := `{"email": "alice@example.com", "refreshToken": "` + creds.Refresh + `"}`
	w = do(r, http.MethodPost, "/api/v1/auth/refresh", body, creds.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
