package auth

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	authmw "github.com/mundero/ceps-service/internal/auth/middleware"
	"github.com/mundero/ceps-service/internal/config"
)

// GuestLoginHandler issues anonymous respondent identities so a visitor can
// take the CEPS quiz without registering. Guests carry the plain "user" role.
func GuestLoginHandler(a *authmw.AuthService, db *sql.DB, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// Reuse an existing guest identity from the cookie, so an interrupted
		// quiz can be resumed from the same browser.
		if c, err := r.Cookie("mu_guest_id"); err == nil && c.Value != "" {
			var username, role string
			err := db.QueryRow(`SELECT username, role FROM users WHERE id=$1`, c.Value).Scan(&username, &role)
			if err == nil && role == "user" && strings.HasPrefix(c.Value, "guest|") {
				tok, _ := a.IssueJWT(c.Value, role)
				setGuestCookie(w, c.Value)
				_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
				return
			}
		}

		sfx := strconv.FormatInt(time.Now().UnixNano(), 36)
		userID := "guest|" + sfx
		username := "guest-" + sfx[len(sfx)-6:]

		// A token for a user row that was never written would strand the
		// respondent once the role lookup runs, so the insert must land.
		if _, err := db.Exec(`INSERT INTO users (id, username, role, created_at)
		                      VALUES ($1,$2,'user',$3)`, userID, username, time.Now().Unix()); err != nil {
			log.Printf("auth: create guest %s: %v", userID, err)
			http.Error(w, "create guest", http.StatusInternalServerError)
			return
		}

		tok, err := a.IssueJWT(userID, "user")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		setGuestCookie(w, userID)
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
}

func setGuestCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "mu_guest_id",
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}
