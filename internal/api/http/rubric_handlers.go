package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/triviet-energy/kpi-gateway/internal/rubric"
)

type roleInfo struct {
	Role rubric.Role `json:"role"`
	Name string      `json:"name"`
}

// GET /roles
func ListRolesHandler() http.HandlerFunc {
	out := make([]roleInfo, 0, len(rubric.Roles))
	for _, r := range rubric.Roles {
		out = append(out, roleInfo{Role: r, Name: rubric.RoleNames[r]})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /rubrics/{role}
func GetRubricHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := rubric.Role(chi.URLParam(r, "role"))
		if _, ok := rubric.RoleNames[role]; !ok {
			http.Error(w, "unknown role", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"role":       role,
			"name":       rubric.RoleNames[role],
			"categories": rubric.ForRole(role),
		})
	}
}
