package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/log"
)

func newAuthBackend(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "tok-123",
			TokenType:   "bearer",
			User:        api.User{ID: "u1", Name: "Asha Rao", Email: req.Email},
		})
	})
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req api.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "tok-456",
			TokenType:   "bearer",
			User:        api.User{ID: "u2", Name: req.Name, Email: req.Email},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestService(t *testing.T) (*Service, *Store) {
	srv := newAuthBackend(t)
	store := NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	client := api.NewClient(srv.URL)
	svc := NewService(store, client, log.Default())
	return svc, store
}

func TestLoginPersistsSession(t *testing.T) {
	svc, store := newTestService(t)

	var events []Event
	svc.Subscribe(func(e Event) { events = append(events, e) })

	result := svc.Login(context.Background(), "asha@example.org", "secret")
	require.True(t, result.OK, "unexpected failure: %s", result.Err)

	assert.True(t, svc.Authenticated())
	assert.Equal(t, "tok-123", store.Token())

	user := svc.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Asha Rao", user.Name)

	require.Len(t, events, 1)
	assert.True(t, events[0].Authenticated)
	assert.Equal(t, ReasonLogin, events[0].Reason)
}

func TestLoginFailureSurfacesDetail(t *testing.T) {
	svc, store := newTestService(t)

	result := svc.Login(context.Background(), "asha@example.org", "wrong")
	require.False(t, result.OK)

	assert.Equal(t, "Invalid email or password", result.Err)
	assert.False(t, svc.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, svc.CurrentUser())
}

func TestRegisterEstablishesSession(t *testing.T) {
	svc, _ := newTestService(t)

	result := svc.Register(context.Background(), "Ravi", "ravi@example.org", "99", "secret")
	require.True(t, result.OK)

	assert.True(t, svc.Authenticated())
	user := svc.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Ravi", user.Name)
}

func TestLogoutClearsEverything(t *testing.T) {
	svc, store := newTestService(t)

	require.True(t, svc.Login(context.Background(), "asha@example.org", "secret").OK)

	var events []Event
	svc.Subscribe(func(e Event) { events = append(events, e) })

	require.NoError(t, svc.Logout())

	assert.False(t, svc.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, svc.CurrentUser())

	require.Len(t, events, 1)
	assert.False(t, events[0].Authenticated)
	assert.Equal(t, ReasonLogout, events[0].Reason)
}

func TestExpireTearsDownSession(t *testing.T) {
	svc, store := newTestService(t)
	require.True(t, svc.Login(context.Background(), "asha@example.org", "secret").OK)

	var events []Event
	svc.Subscribe(func(e Event) { events = append(events, e) })

	svc.Expire()

	assert.False(t, svc.Authenticated())
	assert.Empty(t, store.Token())

	require.Len(t, events, 1)
	assert.Equal(t, ReasonExpired, events[0].Reason)
}

func TestStoreTokenReadsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewStore(path)

	require.NoError(t, store.Save(&Credentials{AccessToken: "first", User: api.User{ID: "u1"}}))
	assert.Equal(t, "first", store.Token())

	// Rotate out of band; the next read must see the new token.
	require.NoError(t, store.Save(&Credentials{AccessToken: "second", User: api.User{ID: "u1"}}))
	assert.Equal(t, "second", store.Token())
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path)
	_, err := store.Load()
	assert.Error(t, err)
	assert.Empty(t, store.Token())
}

func TestStoreClearMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	assert.NoError(t, store.Clear())
}
