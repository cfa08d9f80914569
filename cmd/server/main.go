package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fieldcraft/cinequote/internal/config"
	"github.com/fieldcraft/cinequote/internal/db"
	"github.com/fieldcraft/cinequote/internal/migrations"
	"github.com/fieldcraft/cinequote/internal/seed"
)

type server struct {
	auth       *authService
	db         *sql.DB
	studioName string
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to seed defaults: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d default rows", stats.Inserts)
	}

	auth := newAuthService(database, cfg.SessionSecret)
	if err := auth.ensureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	srv := &server{auth: auth, db: database, studioName: cfg.StudioName}

	r := chi.NewRouter()
	r.Use(srv.authMiddleware)
	r.Get("/health", srv.handleHealth)
	r.Post("/login", srv.handleLogin)
	r.Post("/logout", srv.handleLogout)

	r.Get("/admin/rates", srv.handleRatesList)
	r.Post("/admin/rates", srv.handleRateUpsert)
	r.Get("/admin/gear", srv.handleGearList)
	r.Post("/admin/gear", srv.handleGearUpsert)
	r.Get("/admin/settings", srv.handleSettingsGet)
	r.Put("/admin/settings", srv.handleSettingsUpdate)
	r.Get("/admin/catalog", srv.handleCatalogGet)
	r.Put("/admin/catalog", srv.handleCatalogUpdate)

	r.Post("/quotes/calc", srv.handleQuoteCalc)
	r.Post("/quotes/deliverable/calc", srv.handleDeliverableCalc)
	r.Post("/quotes", srv.handleQuoteSave)
	r.Get("/quotes", srv.handleQuotesList)
	r.Post("/quotes/export/pdf", srv.handleQuotePDF)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	valid, err := s.auth.validateCredentials(req.Email, req.Password)
	if err != nil {
		log.Printf("login: validate credentials: %v", err)
		writeError(w, http.StatusInternalServerError, "authentication_error")
		return
	}
	if !valid {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" || r.URL.Path == "/health" || strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated(r, s.auth) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAuthenticated(r *http.Request, auth *authService) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}

	_, ok := auth.verifySessionValue(cookie.Value)
	return ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
