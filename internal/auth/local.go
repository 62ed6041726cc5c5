// Package auth hosts the local account collaborator: registration, login,
// and logout over the users table. The evaluation core treats this purely
// as an opaque identity provider.
package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	authmw "github.com/triviet-energy/kpi-gateway/internal/auth/middleware"
	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
)

// UserAccount is the identity payload handed back to the frontend.
type UserAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserAccount `json:"user"`
}

// POST /auth/login  { "username": "...", "password": "..." }
func LoginHandler(a *authmw.AuthService, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			http.Error(w, "username and password required", http.StatusBadRequest)
			return
		}

		var u UserAccount
		var hash string
		err := db.QueryRow(`SELECT id, username, full_name, password_hash, role FROM users WHERE username=$1`,
			req.Username).Scan(&u.ID, &u.Username, &u.FullName, &hash, &u.Role)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		tok, err := a.IssueJWT(u.ID, u.Role, u.FullName)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(authResponse{AccessToken: tok, User: u})
	}
}

// POST /auth/register  { "username", "password", "full_name" }
// New accounts get the "evaluator" role; admins are provisioned out of band.
func RegisterHandler(a *authmw.AuthService, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.FullName = strings.TrimSpace(req.FullName)
		switch {
		case req.Username == "":
			http.Error(w, "username required", http.StatusBadRequest)
			return
		case len(req.Password) < 6:
			http.Error(w, "password must be at least 6 characters", http.StatusBadRequest)
			return
		case req.FullName == "":
			http.Error(w, "full name required", http.StatusBadRequest)
			return
		}

		var exists int
		err := db.QueryRow(`SELECT 1 FROM users WHERE username=$1`, req.Username).Scan(&exists)
		if err == nil {
			http.Error(w, "username already taken", http.StatusConflict)
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		u := UserAccount{
			ID:       "user|" + time.Now().Format("20060102150405.000000000"),
			Username: req.Username,
			FullName: req.FullName,
			Role:     "evaluator",
		}
		_, err = db.Exec(`INSERT INTO users (id, username, full_name, password_hash, role, created_at)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			u.ID, u.Username, u.FullName, string(hash), u.Role, time.Now().Unix())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		tok, err := a.IssueJWT(u.ID, u.Role, u.FullName)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(authResponse{AccessToken: tok, User: u})
	}
}

// POST /auth/logout tears down the caller's evaluation session. Token
// invalidation is the client's job (drop the bearer); the server-side part
// of logout is clearing the dependent in-memory state.
func LogoutHandler(sessions evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		if sub == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		sessions.Reset(sub)
		w.WriteHeader(http.StatusNoContent)
	}
}
