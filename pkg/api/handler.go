package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/mklimuk/expedition-pilot/pkg/ai"
	"github.com/mklimuk/expedition-pilot/pkg/countdown"
	"github.com/mklimuk/expedition-pilot/pkg/itinerary"
	"github.com/mklimuk/expedition-pilot/pkg/state"
)

// Handler holds dependencies for API handlers
type Handler struct {
	Store     *state.Store
	Text      ai.Generator
	Image     ai.ImageGenerator
	Countdown *countdown.Ticker
	Missions  []itinerary.DayMission
	Intel     []itinerary.IntelRecord
	Plans     []itinerary.BackupPlan

	// Collapses concurrent hero requests into one upstream generation.
	heroGroup singleflight.Group
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// taskView is a task merged with its completion flag.
type taskView struct {
	itinerary.Task
	Completed bool `json:"completed"`
}

type missionView struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Date  string     `json:"date"`
	Tasks []taskView `json:"tasks"`
}

// HandleItinerary handles GET /itinerary
func (h *Handler) HandleItinerary(w http.ResponseWriter, r *http.Request) {
	done := h.Store.Completed()

	missions := make([]missionView, 0, len(h.Missions))
	for _, m := range h.Missions {
		mv := missionView{ID: m.ID, Title: m.Title, Date: m.Date, Tasks: make([]taskView, 0, len(m.Tasks))}
		for _, t := range m.Tasks {
			mv.Tasks = append(mv.Tasks, taskView{Task: t, Completed: done[t.ID]})
		}
		missions = append(missions, mv)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"missions": missions})
}

// HandleIntel handles GET /intel
func (h *Handler) HandleIntel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": h.Intel})
}

// HandlePlan handles GET /plans/{type}
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	kind := itinerary.PlanType(r.PathValue("type"))
	plan, ok := itinerary.PlanByType(h.Plans, kind)
	if !ok {
		http.Error(w, "Unknown plan type", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// HandleProgress handles GET /progress
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	done := h.Store.Completed()
	writeJSON(w, http.StatusOK, map[string]int{
		"completed": len(done),
		"total":     itinerary.TotalTasks(h.Missions),
		"percent":   itinerary.Progress(h.Missions, done),
	})
}

// HandleCountdown handles GET /countdown
func (h *Handler) HandleCountdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Countdown.Current())
}

// HandleToggleTask handles POST /tasks/{id}/toggle
func (h *Handler) HandleToggleTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !itinerary.TaskExists(h.Missions, id) {
		http.Error(w, "Unknown task id", http.StatusNotFound)
		return
	}

	done, err := h.Store.Toggle(id)
	if err != nil {
		// The in-memory flip holds; a persistence hiccup is logged only,
		// mirroring how the dashboard treats storage as best effort.
		log.Printf("toggle %s: %v", id, err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":        id,
		"completed": done,
		"percent":   itinerary.Progress(h.Missions, h.Store.Completed()),
	})
}

// HandleGetTheme handles GET /theme
func (h *Handler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"theme": h.Store.Theme()})
}

// HandleSetTheme handles PUT /theme
func (h *Handler) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Store.SetTheme(req.Theme); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
}

// BriefingRequest represents the payload for an assistant prompt
type BriefingRequest struct {
	Prompt string `json:"prompt"`
}

// HandleBriefing handles POST /assistant/briefing. Concurrent in-flight
// prompts are allowed; the generator holds no per-conversation state.
func (h *Handler) HandleBriefing(w http.ResponseWriter, r *http.Request) {
	var req BriefingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		http.Error(w, "Empty prompt", http.StatusBadRequest)
		return
	}

	b := ai.GetBriefing(r.Context(), h.Text, req.Prompt)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reply":    b.Text,
		"fallback": b.Fallback,
	})
}

// HandleHero handles GET /hero. The image is generated at most once and
// cached persistently; a failed attempt answers with a null image and the
// next request tries again.
func (h *Handler) HandleHero(w http.ResponseWriter, r *http.Request) {
	if uri, ok := h.Store.HeroImage(); ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"image": uri, "cached": true})
		return
	}
	if h.Image == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"image": nil})
		return
	}

	v, _, _ := h.heroGroup.Do("hero", func() (interface{}, error) {
		// Re-check: a concurrent request may have filled the cache.
		if uri, ok := h.Store.HeroImage(); ok {
			return uri, nil
		}
		uri, ok := ai.HeroVisual(context.Background(), h.Image)
		if !ok {
			return "", nil
		}
		if err := h.Store.SetHeroImage(uri); err != nil {
			log.Printf("hero image cache write failed: %v", err)
		}
		return uri, nil
	})

	uri, _ := v.(string)
	if uri == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"image": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"image": uri})
}
