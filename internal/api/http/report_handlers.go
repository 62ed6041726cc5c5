package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/rubric"
	"github.com/triviet-energy/kpi-gateway/internal/scoring"
	"github.com/triviet-energy/kpi-gateway/internal/storage"
	syncx "github.com/triviet-energy/kpi-gateway/internal/sync"
)

// formCode appears in the header of every printed evaluation form.
const formCode = "BM-KPI-01"

type reportView struct {
	FormCode string                  `json:"form_code"`
	Info     evaluation.EmployeeInfo `json:"info"`
	Month    string                  `json:"month"`
	Role     rubric.Role             `json:"role"`
	RoleName string                  `json:"role_name"`
	Rubric   []rubric.Category       `json:"rubric"`
	Ratings  scoring.Ratings         `json:"ratings"`
	Summary  scoring.Summary         `json:"summary"`
	LogoKey  string                  `json:"logo_key,omitempty"`
}

// GetReportHandler assembles the full printable snapshot for the caller's
// live session: header info, the active rubric, every rating, and the
// computed summary in one payload.
func GetReportHandler(store evaluation.Store, blobs storage.BlobStore, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		s := store.Get(sub)
		if s.Role == "" {
			http.Error(w, evaluation.ErrNoRole.Error(), http.StatusBadRequest)
			return
		}
		cats := s.Rubric()
		view := reportView{
			FormCode: formCode,
			Info:     s.Info,
			Month:    s.Month,
			Role:     s.Role,
			RoleName: rubric.RoleNames[s.Role],
			Rubric:   cats,
			Ratings:  s.Ratings,
			Summary:  scoring.Summarize(cats, s.Ratings),
		}
		if blobs != nil {
			key := logoKey(sub)
			if rc, err := blobs.Get(key); err == nil {
				rc.Close()
				view.LogoKey = key
			}
		}
		if events != nil {
			if err := events.Record(r.Context(), syncx.EventReportViewed, sub, map[string]string{"month": s.Month, "role": string(s.Role)}); err != nil {
				log.Printf("event log: %v", err)
			}
		}
		_ = json.NewEncoder(w).Encode(view)
	}
}
