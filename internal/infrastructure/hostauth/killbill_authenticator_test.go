package hostauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newKillBillServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != permissionsPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]string{"payment:trigger", "account:view"})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestKillBillAuthenticator(t *testing.T) {
	srv := newKillBillServer(t)
	auth := NewKillBillAuthenticator(srv.URL, 2*time.Second, zap.NewNop())

	t.Run("login and logout", func(t *testing.T) {
		session, err := auth.Login(context.Background(), "admin", "password")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Token == "" || len(session.Permissions) != 2 {
			t.Fatalf("unexpected session: %+v", session)
		}
		if auth.ActiveSessions() != 1 {
			t.Fatalf("expected 1 active session, got %d", auth.ActiveSessions())
		}
		if err := auth.Logout(context.Background(), session); err != nil {
			t.Fatalf("unexpected logout error: %v", err)
		}
		if err := auth.Logout(context.Background(), session); err != nil {
			t.Fatalf("second logout must be a no-op: %v", err)
		}
		if auth.ActiveSessions() != 0 {
			t.Fatalf("expected no active session")
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		if _, err := auth.Login(context.Background(), "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		if _, err := auth.Login(context.Background(), "", ""); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("nil logout", func(t *testing.T) {
		if err := auth.Logout(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
