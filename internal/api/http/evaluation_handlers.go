package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	authmw "github.com/triviet-energy/kpi-gateway/internal/auth/middleware"
	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/rubric"
	"github.com/triviet-energy/kpi-gateway/internal/scoring"
	syncx "github.com/triviet-energy/kpi-gateway/internal/sync"
)

func subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	sub := authmw.SubjectFromContext(r.Context())
	if sub == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return sub, true
}

func writeSession(w http.ResponseWriter, s evaluation.Session) {
	_ = json.NewEncoder(w).Encode(s)
}

func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, evaluation.ErrNoRole),
		errors.Is(err, evaluation.ErrUnknownItem),
		errors.Is(err, evaluation.ErrInvalidLevel),
		errors.Is(err, evaluation.ErrNothingStaged):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GET /evaluation
func GetSessionHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		writeSession(w, store.Get(sub))
	}
}

// POST /evaluation/role  { "role": "OPERATOR" }
func SelectRoleHandler(store evaluation.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		var req struct {
			Role rubric.Role `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.SelectRole(sub, req.Role)
		if err != nil {
			storeError(w, err)
			return
		}
		if events != nil {
			if err := events.Record(r.Context(), syncx.EventRoleSelected, sub, map[string]string{"role": string(req.Role)}); err != nil {
				log.Printf("event log: %v", err)
			}
		}
		writeSession(w, s)
	}
}

// POST /evaluation/ratings  { "item_id": "1.1", "level": "GOOD" }
func RateItemHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		var req struct {
			ItemID string       `json:"item_id"`
			Level  rubric.Level `json:"level"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.Rate(sub, req.ItemID, req.Level)
		if err != nil {
			storeError(w, err)
			return
		}
		writeSession(w, s)
	}
}

// POST /evaluation/notes  { "item_id": "1.1", "notes": "..." }
func SetNoteHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		var req struct {
			ItemID string `json:"item_id"`
			Notes  string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.SetNote(sub, req.ItemID, req.Notes)
		if err != nil {
			storeError(w, err)
			return
		}
		writeSession(w, s)
	}
}

// PUT /evaluation/info
func SetInfoHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		var info evaluation.EmployeeInfo
		if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.SetInfo(sub, info)
		if err != nil {
			storeError(w, err)
			return
		}
		writeSession(w, s)
	}
}

// PUT /evaluation/month  { "month": "2025-08" }
func SetMonthHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		var req struct {
			Month string `json:"month"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.SetMonth(sub, req.Month)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeSession(w, s)
	}
}

// GET /evaluation/summary runs one scoring engine pass over the live session.
func GetSummaryHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		s := store.Get(sub)
		_ = json.NewEncoder(w).Encode(scoring.Summarize(s.Rubric(), s.Ratings))
	}
}

// DELETE /evaluation
func ResetSessionHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		store.Reset(sub)
		w.WriteHeader(http.StatusNoContent)
	}
}
