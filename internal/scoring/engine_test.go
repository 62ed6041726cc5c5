package scoring

import (
	"math"
	"testing"

	"github.com/triviet-energy/kpi-gateway/internal/rubric"
)

// cat builds a single-category rubric whose items all carry the standard
// GOOD=100% / AVERAGE=70% / WEAK=0% criteria.
func cat(id, name string, maxPoints ...float64) rubric.Category {
	c := rubric.Category{ID: id, Name: name}
	for i, mp := range maxPoints {
		c.Items = append(c.Items, rubric.Item{
			ID:        id + "." + string(rune('1'+i)),
			Name:      "item",
			MaxPoints: mp,
			Good:      rubric.Criterion{Label: "Tốt", ScorePercent: 1.0},
			Average:   rubric.Criterion{Label: "Trung Bình", ScorePercent: 0.7},
			Weak:      rubric.Criterion{Label: "Yếu", ScorePercent: 0.0},
		})
	}
	return c
}

func rateAll(cats []rubric.Category, level rubric.Level) Ratings {
	rs := Ratings{}
	for _, c := range cats {
		for _, it := range c.Items {
			rs[it.ID] = Rating{Level: level, ActualScore: ItemScore(it, level)}
		}
	}
	return rs
}

func TestSummarizeEmpty(t *testing.T) {
	cats := rubric.ForRole(rubric.RoleManager)
	s := Summarize(cats, Ratings{})
	if s.TotalScore != 0 || s.PenaltyApplied {
		t.Fatalf("expected zero total without penalty, got %+v", s)
	}
	if s.Ranking != RankPlaceholder {
		t.Fatalf("empty evaluation ranking = %q, want %q", s.Ranking, RankPlaceholder)
	}
	if s.MaxTotalScore != 100 {
		t.Fatalf("manager rubric max = %v, want 100", s.MaxTotalScore)
	}
	if len(s.CategoryScores) != len(cats) {
		t.Fatalf("category scores = %d, want %d", len(s.CategoryScores), len(cats))
	}
}

func TestSummarizeAllGood(t *testing.T) {
	cats := rubric.ForRole(rubric.RoleManager)
	s := Summarize(cats, rateAll(cats, rubric.LevelGood))
	if s.TotalScore != 100 {
		t.Fatalf("total = %v, want 100", s.TotalScore)
	}
	if s.Percent != 100 {
		t.Fatalf("percent = %v, want 100", s.Percent)
	}
	if s.Ranking != RankExcellent {
		t.Fatalf("ranking = %q, want %q", s.Ranking, RankExcellent)
	}
	if s.PenaltyApplied {
		t.Fatal("penalty applied without any WEAK rating")
	}
	for _, cs := range s.CategoryScores {
		if cs.Score != cs.Max {
			t.Fatalf("category %s score %v != max %v", cs.ID, cs.Score, cs.Max)
		}
		if cs.Percentage != 100 {
			t.Fatalf("category %s percentage = %d, want 100", cs.ID, cs.Percentage)
		}
	}
}

func TestSummarizeAverageScores(t *testing.T) {
	cats := []rubric.Category{cat("cat_1", "1. VẬN HÀNH", 10)}
	rs := rateAll(cats, rubric.LevelAverage)
	s := Summarize(cats, rs)
	if s.TotalScore != 7 {
		t.Fatalf("total = %v, want 7", s.TotalScore)
	}
	if s.Ranking != RankFail {
		t.Fatalf("ranking = %q, want %q", s.Ranking, RankFail)
	}
}

func TestWeakPenaltyClampsAtZero(t *testing.T) {
	// A single WEAK item: raw total 0, minus 30, clamped back to 0. The
	// ranking must still be computed (penalty marks the form as graded).
	cats := []rubric.Category{cat("cat_1", "1. CÔNG VIỆC", 10)}
	rs := rateAll(cats, rubric.LevelWeak)
	s := Summarize(cats, rs)
	if !s.PenaltyApplied {
		t.Fatal("penalty not applied for WEAK rating")
	}
	if s.TotalScore != 0 {
		t.Fatalf("total = %v, want 0 after clamp", s.TotalScore)
	}
	if s.Ranking != RankFail {
		t.Fatalf("ranking = %q, want %q", s.Ranking, RankFail)
	}
}

func TestWeakPenaltyAppliedOnce(t *testing.T) {
	// Three WEAK ratings across two categories still deduct 30 exactly once.
	cats := []rubric.Category{
		cat("cat_1", "1. VẬN HÀNH", 40, 30),
		cat("cat_2", "2. AN TOÀN", 30),
	}
	rs := rateAll(cats, rubric.LevelGood)
	rs["cat_1.2"] = Rating{Level: rubric.LevelWeak, ActualScore: 0}
	rs["cat_2.1"] = Rating{Level: rubric.LevelWeak, ActualScore: 0}
	s := Summarize(cats, rs)
	if got, want := s.TotalScore, 10.0; got != want {
		t.Fatalf("total = %v, want %v (40 - 30 penalty)", got, want)
	}
	if !s.PenaltyApplied {
		t.Fatal("penalty flag not set")
	}
}

func TestRankingBoundaries(t *testing.T) {
	tests := []struct {
		max  float64
		want string
	}{
		{90, RankExcellent},
		{89.99, RankPass},
		{70, RankPass},
		{69.99, RankFail},
		{0.01, RankFail},
	}
	for _, tc := range tests {
		cats := []rubric.Category{cat("cat_1", "1. CHUYÊN MÔN", tc.max)}
		s := Summarize(cats, rateAll(cats, rubric.LevelGood))
		if s.Ranking != tc.want {
			t.Errorf("total %v: ranking = %q, want %q", tc.max, s.Ranking, tc.want)
		}
	}
}

func TestSummarizeHalfScore(t *testing.T) {
	cats := []rubric.Category{
		cat("cat_1", "1. VẬN HÀNH", 50),
		cat("cat_2", "2. AN TOÀN", 50),
	}
	rs := rateAll(cats, rubric.LevelGood)
	delete(rs, "cat_2.1") // half the form left unrated
	s := Summarize(cats, rs)
	if s.TotalScore != 50 || s.MaxTotalScore != 100 {
		t.Fatalf("total/max = %v/%v, want 50/100", s.TotalScore, s.MaxTotalScore)
	}
	if s.Percent != 50 {
		t.Fatalf("percent = %v, want 50", s.Percent)
	}
	if s.Ranking != RankFail {
		t.Fatalf("ranking = %q, want %q", s.Ranking, RankFail)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	cats := rubric.ForRole(rubric.RoleOperator)
	rs := rateAll(cats, rubric.LevelAverage)
	a := Summarize(cats, rs)
	b := Summarize(cats, rs)
	if a.TotalScore != b.TotalScore || a.Ranking != b.Ranking || a.Percent != b.Percent {
		t.Fatalf("repeated passes diverge: %+v vs %+v", a, b)
	}
}

func TestItemScoreRounding(t *testing.T) {
	it := rubric.Item{
		MaxPoints: 9,
		Average:   rubric.Criterion{ScorePercent: 0.7},
	}
	if got := ItemScore(it, rubric.LevelAverage); got != 6.3 {
		t.Fatalf("ItemScore = %v, want 6.3", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{6.3000000000000007, 6.3},
		{0.005, 0.01},
		{89.994, 89.99},
		{-0.004, 0},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestShortName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1. VẬN HÀNH", "Vận hành"},
		{"2. AN TOÀN & 5S", "An toàn"},
		{"3. THIẾT BỊ", "Thiết bị"},
		{"4. NHÂN SỰ", "Nhân sự"},
		{"3. BÁO CÁO", "Báo cáo"},
		{"2. KỶ LUẬT", "Kỷ luật"},
		{"1. CHUYÊN MÔN", "Chuyên môn"},
		{"2. TUÂN THỦ", "TUÂN THỦ"},    // no keyword: text after the numeral
		{"KHÁC", "KHÁC"},               // no numeral either
	}
	for _, tc := range tests {
		if got := shortName(tc.in); got != tc.want {
			t.Errorf("shortName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
