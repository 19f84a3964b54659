package api

import (
	"net/http"

	"github.com/mklimuk/expedition-pilot/pkg/ai"
	"github.com/mklimuk/expedition-pilot/pkg/countdown"
	"github.com/mklimuk/expedition-pilot/pkg/itinerary"
	"github.com/mklimuk/expedition-pilot/pkg/state"
)

// NewRouter creates a new HTTP router
func NewRouter(store *state.Store, textGen ai.Generator, imageGen ai.ImageGenerator, ticker *countdown.Ticker, missions []itinerary.DayMission) *http.ServeMux {
	mux := http.NewServeMux()

	h := &Handler{
		Store:     store,
		Text:      textGen,
		Image:     imageGen,
		Countdown: ticker,
		Missions:  missions,
		Intel:     itinerary.IntelRecords,
		Plans:     itinerary.BackupPlans,
	}

	mux.HandleFunc("GET /itinerary", h.HandleItinerary)
	mux.HandleFunc("GET /intel", h.HandleIntel)
	mux.HandleFunc("GET /plans/{type}", h.HandlePlan)
	mux.HandleFunc("GET /progress", h.HandleProgress)
	mux.HandleFunc("GET /countdown", h.HandleCountdown)
	mux.HandleFunc("POST /tasks/{id}/toggle", h.HandleToggleTask)
	mux.HandleFunc("GET /theme", h.HandleGetTheme)
	mux.HandleFunc("PUT /theme", h.HandleSetTheme)
	mux.HandleFunc("POST /assistant/briefing", h.HandleBriefing)
	mux.HandleFunc("GET /hero", h.HandleHero)

	return mux
}
