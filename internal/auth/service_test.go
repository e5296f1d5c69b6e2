package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"restofresh-web/internal/clientstate"
	"restofresh-web/internal/restapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *clientstate.Store) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	state, err := clientstate.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	api := restapi.NewClient(ts.URL, state)
	return NewService(api, state), state
}

func TestService_Login(t *testing.T) {
	svc, state := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@resto.test", req.Email)

		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken: "tok-abc",
			TokenType:   "bearer",
			UserID:      "u-1",
			Role:        "admin",
		})
	})

	resp, err := svc.Login(context.Background(), "admin@resto.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)

	// Token and user data are persisted.
	assert.Equal(t, "tok-abc", state.Token())
	user, ok := state.User()
	require.True(t, ok)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, svc.IsAuthenticated())
	assert.True(t, svc.IsAdmin())
}

func TestService_LoginValidation(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrMissingEmail)

	_, err = svc.Login(ctx, "a@b.c", "  ")
	assert.ErrorIs(t, err, ErrMissingPassword)

	assert.Equal(t, int32(0), calls.Load())
}

func TestService_LoginRejected(t *testing.T) {
	svc, state := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"bad credentials"}`))
	})

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")

	assert.ErrorIs(t, err, restapi.ErrUnauthorized)
	assert.Equal(t, "", state.Token())
	assert.False(t, svc.IsAuthenticated())
}

func TestService_Logout(t *testing.T) {
	svc, state := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(LoginResponse{AccessToken: "tok", UserID: "u-1", Role: "admin"})
	})

	_, err := svc.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)

	svc.Logout()

	assert.Equal(t, "", state.Token())
	assert.False(t, svc.IsAuthenticated())
	assert.False(t, svc.IsAdmin())
}

func TestService_IsAdmin(t *testing.T) {
	svc, state := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, state.SetAuth("tok", clientstate.UserData{UserID: "u-2", Role: "staff"}))
	assert.True(t, svc.IsAuthenticated())
	assert.False(t, svc.IsAdmin())
}
