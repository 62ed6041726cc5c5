package evaluation

import (
	"github.com/triviet-energy/kpi-gateway/internal/rubric"
	"github.com/triviet-energy/kpi-gateway/internal/scoring"
)

// EmployeeInfo is the free-form header block of the evaluation form.
// ReportDate is an ISO date (YYYY-MM-DD).
type EmployeeInfo struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Position   string `json:"position"`
	Department string `json:"department"`
	ReportDate string `json:"report_date"`
}

// PendingImport is a reconstructed evaluation staged by the report importer.
// It replaces (EmployeeInfo, role, ratings) wholesale, but only after the
// user explicitly confirms; until then the live session is untouched.
type PendingImport struct {
	Info    EmployeeInfo    `json:"info"`
	Month   string          `json:"month,omitempty"` // YYYY-MM
	Role    rubric.Role     `json:"role"`
	Ratings scoring.Ratings `json:"ratings"`
}

// Session is one user's in-memory evaluation state. It is owned by exactly
// one authenticated user and never shared across users.
type Session struct {
	Role    rubric.Role     `json:"role,omitempty"`
	Info    EmployeeInfo    `json:"info"`
	Month   string          `json:"month"` // evaluation period, YYYY-MM
	Ratings scoring.Ratings `json:"ratings"`
	Pending *PendingImport  `json:"pending_import,omitempty"`
}

// Rubric returns the active rubric for the session's role, or nil when no
// role has been selected yet.
func (s Session) Rubric() []rubric.Category {
	if s.Role == "" {
		return nil
	}
	return rubric.ForRole(s.Role)
}
