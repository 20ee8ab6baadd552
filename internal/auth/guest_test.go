package auth_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mundero/ceps-service/internal/auth"
	authmw "github.com/mundero/ceps-service/internal/auth/middleware"
	"github.com/mundero/ceps-service/internal/config"
	"github.com/mundero/ceps-service/internal/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return dbh
}

func TestGuestLogin_CreatesIdentity(t *testing.T) {
	dbh := openTestDB(t)
	svc := authmw.NewAuthService("test-secret")
	h := auth.GuestLoginHandler(svc, dbh, config.Config{EnableGuestAuth: true})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/guest", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var n int
	if err := dbh.QueryRow(`SELECT COUNT(*) FROM users WHERE id LIKE 'guest|%'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("guest rows = %d, want 1", n)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "mu_guest_id" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("guest cookie not set")
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(out.AccessToken)
	if err != nil || claims == nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Sub != cookie.Value || claims.Role != "user" {
		t.Fatalf("claims = %+v, want sub %q role user", claims, cookie.Value)
	}
}

func TestGuestLogin_Disabled(t *testing.T) {
	dbh := openTestDB(t)
	svc := authmw.NewAuthService("test-secret")
	h := auth.GuestLoginHandler(svc, dbh, config.Config{EnableGuestAuth: false})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/guest", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestGuestLogin_InsertFailureDeniesToken(t *testing.T) {
	dbh := openTestDB(t)
	svc := authmw.NewAuthService("test-secret")
	h := auth.GuestLoginHandler(svc, dbh, config.Config{EnableGuestAuth: true})

	// A closed pool makes the insert fail; no token may be issued for a
	// user row that was never written.
	dbh.Close()

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/guest", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "mu_guest_id" {
			t.Fatal("cookie must not be set when the identity was not created")
		}
	}
}
