package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/domain"
	"server/internal/infra"
)

type App struct {
	Repo   domain.ContributionRepository
	Logger infra.Logger
}

func NewApp(repo domain.ContributionRepository, logger infra.Logger) *App {
	return &App{Repo: repo, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": code, "message": message})
}
