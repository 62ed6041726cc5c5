package evaluation

import (
	"errors"
	"testing"

	"github.com/triviet-energy/kpi-gateway/internal/rubric"
	"github.com/triviet-energy/kpi-gateway/internal/scoring"
)

func TestGetCreatesDefaultSession(t *testing.T) {
	st := NewInMemoryStore()
	s := st.Get("u1")
	if s.Role != "" {
		t.Fatalf("fresh session has role %q", s.Role)
	}
	if s.Month == "" || s.Info.ReportDate == "" {
		t.Fatalf("fresh session missing defaults: %+v", s)
	}
	if s.Ratings == nil || len(s.Ratings) != 0 {
		t.Fatalf("fresh session ratings = %v", s.Ratings)
	}
}

func TestSelectRolePresetsAndResets(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SelectRole("u1", rubric.RoleOperator); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Rate("u1", "1.1", rubric.LevelGood); err != nil {
		t.Fatal(err)
	}

	s, err := st.SelectRole("u1", rubric.RoleAccountant)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Ratings) != 0 {
		t.Fatalf("role change kept %d ratings", len(s.Ratings))
	}
	if s.Info.Position != "Kế Toán" {
		t.Errorf("position = %q, want prefix before the slash", s.Info.Position)
	}
	if s.Info.Department != "Phòng Kế Toán" {
		t.Errorf("department = %q", s.Info.Department)
	}

	s, err = st.SelectRole("u1", rubric.RoleDriver)
	if err != nil {
		t.Fatal(err)
	}
	if s.Info.Position != "Lái Xe" {
		t.Errorf("position = %q, want %q", s.Info.Position, "Lái Xe")
	}
	if s.Info.Department != "Phân Xưởng Vận Hành" {
		t.Errorf("department = %q", s.Info.Department)
	}

	if _, err := st.SelectRole("u1", rubric.Role("JANITOR")); err == nil {
		t.Fatal("unknown role accepted")
	}
}

func TestRateRequiresRoleAndKnownItem(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.Rate("u1", "1.1", rubric.LevelGood); !errors.Is(err, ErrNoRole) {
		t.Fatalf("err = %v, want ErrNoRole", err)
	}
	if _, err := st.SelectRole("u1", rubric.RoleWorker); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Rate("u1", "9.9", rubric.LevelGood); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("err = %v, want ErrUnknownItem", err)
	}
	if _, err := st.Rate("u1", "1.1", rubric.Level("GREAT")); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("err = %v, want ErrInvalidLevel", err)
	}
}

func TestRatePreservesNotes(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SelectRole("u1", rubric.RoleWorker); err != nil {
		t.Fatal(err)
	}
	if _, err := st.SetNote("u1", "1.1", "cần nhắc nhở"); err != nil {
		t.Fatal(err)
	}
	s, err := st.Rate("u1", "1.1", rubric.LevelAverage)
	if err != nil {
		t.Fatal(err)
	}
	r := s.Ratings["1.1"]
	if r.Notes != "cần nhắc nhở" {
		t.Errorf("note lost on rating: %+v", r)
	}
	if r.Level != rubric.LevelAverage || r.ActualScore != 14 {
		t.Errorf("rating = %+v, want AVERAGE 14 (20 * 0.7)", r)
	}

	// regrading keeps the note too
	s, err = st.Rate("u1", "1.1", rubric.LevelGood)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Ratings["1.1"]; got.Notes != "cần nhắc nhở" || got.ActualScore != 20 {
		t.Errorf("regrade = %+v", got)
	}
}

func TestSetMonthValidates(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SetMonth("u1", "2025-13"); err == nil {
		t.Fatal("accepted month 13")
	}
	s, err := st.SetMonth("u1", "2025-08")
	if err != nil {
		t.Fatal(err)
	}
	if s.Month != "2025-08" {
		t.Fatalf("month = %q", s.Month)
	}
}

func TestImportConfirmIsAtomic(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SelectRole("u1", rubric.RoleManager); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Rate("u1", "1.1", rubric.LevelGood); err != nil {
		t.Fatal(err)
	}

	pending := PendingImport{
		Info:  EmployeeInfo{Name: "Phạm Văn Dũng", ID: "NV-0099"},
		Month: "2025-07",
		Role:  rubric.RoleOperator,
		Ratings: scoring.Ratings{
			"1.1": {Level: rubric.LevelAverage, ActualScore: 10.5},
		},
	}
	s, err := st.StageImport("u1", pending)
	if err != nil {
		t.Fatal(err)
	}
	if s.Pending == nil {
		t.Fatal("import not staged")
	}
	// staging alone must not touch the live evaluation
	if s.Role != rubric.RoleManager || s.Ratings["1.1"].Level != rubric.LevelGood {
		t.Fatalf("staging mutated live session: %+v", s)
	}

	s, err = st.ConfirmImport("u1")
	if err != nil {
		t.Fatal(err)
	}
	if s.Pending != nil {
		t.Fatal("pending import survived confirm")
	}
	if s.Role != rubric.RoleOperator || s.Month != "2025-07" {
		t.Fatalf("confirm did not apply role/month: %+v", s)
	}
	if s.Info.Name != "Phạm Văn Dũng" {
		t.Fatalf("confirm did not apply info: %+v", s.Info)
	}
	if r := s.Ratings["1.1"]; r.Level != rubric.LevelAverage {
		t.Fatalf("confirm did not replace ratings: %+v", r)
	}

	if _, err := st.ConfirmImport("u1"); !errors.Is(err, ErrNothingStaged) {
		t.Fatalf("second confirm err = %v, want ErrNothingStaged", err)
	}
}

func TestImportDiscard(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SelectRole("u1", rubric.RoleWorker); err != nil {
		t.Fatal(err)
	}
	if _, err := st.StageImport("u1", PendingImport{Role: rubric.RoleDriver}); err != nil {
		t.Fatal(err)
	}
	s, err := st.DiscardImport("u1")
	if err != nil {
		t.Fatal(err)
	}
	if s.Pending != nil {
		t.Fatal("pending import survived discard")
	}
	if s.Role != rubric.RoleWorker {
		t.Fatalf("discard changed role to %q", s.Role)
	}
}

func TestStageImportRejectsUnknownRole(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.StageImport("u1", PendingImport{Role: rubric.Role("JANITOR")}); err == nil {
		t.Fatal("staged import with unknown role")
	}
}

func TestResetDropsSession(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SelectRole("u1", rubric.RoleOperator); err != nil {
		t.Fatal(err)
	}
	st.Reset("u1")
	if s := st.Get("u1"); s.Role != "" || len(s.Ratings) != 0 {
		t.Fatalf("session survived reset: %+v", s)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	st := NewInMemoryStore()
	if _, err := st.SelectRole("u1", rubric.RoleOperator); err != nil {
		t.Fatal(err)
	}
	s, err := st.Rate("u1", "1.1", rubric.LevelGood)
	if err != nil {
		t.Fatal(err)
	}
	// mutating the returned snapshot must not leak into the store
	s.Ratings["1.1"] = scoring.Rating{Level: rubric.LevelWeak}
	if got := st.Get("u1").Ratings["1.1"]; got.Level != rubric.LevelGood {
		t.Fatalf("snapshot aliasing: store now holds %+v", got)
	}
}
