package scoring

import (
	"math"
	"strings"

	"github.com/triviet-energy/kpi-gateway/internal/rubric"
)

// Ranking labels, as printed on the report.
const (
	RankExcellent   = "Xuất Sắc"
	RankPass        = "Đạt Yêu Cầu"
	RankFail        = "Không Đạt"
	RankPlaceholder = "---"
)

// weakPenalty is deducted once from the grand total when any item anywhere
// is rated WEAK, regardless of how many WEAK ratings exist.
const weakPenalty = 30

// Rating is the evaluator's chosen outcome for one item.
type Rating struct {
	Level       rubric.Level `json:"level"`
	ActualScore float64      `json:"actual_score"`
	Notes       string       `json:"notes"`
}

// Ratings maps role-scoped item IDs to ratings. Unrated items are absent.
type Ratings map[string]Rating

// CategoryScore is the per-category rollup, rebuilt on every engine pass.
type CategoryScore struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ShortName  string  `json:"short_name"`
	Score      float64 `json:"score"`
	Max        float64 `json:"max"`
	Percentage int     `json:"percentage"`
}

// Summary is the full derived output of one engine pass.
type Summary struct {
	CategoryScores []CategoryScore `json:"category_scores"`
	TotalScore     float64         `json:"total_score"`
	MaxTotalScore  float64         `json:"max_total_score"`
	Percent        float64         `json:"percent"`
	Ranking        string          `json:"ranking"`
	PenaltyApplied bool            `json:"penalty_applied"`
}

// Round2 rounds to two decimals, half away from zero on the cent boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemScore derives the actual score for rating an item at the given level.
func ItemScore(it rubric.Item, level rubric.Level) float64 {
	c, ok := it.Criterion(level)
	if !ok {
		return 0
	}
	return Round2(it.MaxPoints * c.ScorePercent)
}

// Summarize computes all derived aggregates for one rubric and rating set.
// It is a total function: any input yields a valid Summary, and an empty
// rating set yields all-zero scores with the placeholder ranking.
func Summarize(cats []rubric.Category, ratings Ratings) Summary {
	var (
		total   float64
		max     float64
		penalty bool
	)
	scores := make([]CategoryScore, 0, len(cats))
	for _, cat := range cats {
		var catScore, catMax float64
		for _, it := range cat.Items {
			catMax += it.MaxPoints
			if r, ok := ratings[it.ID]; ok {
				catScore += r.ActualScore
				if r.Level == rubric.LevelWeak {
					penalty = true
				}
			}
		}
		catScore = Round2(catScore)
		total += catScore
		max += catMax

		pct := 0
		if catMax > 0 {
			pct = int(math.Round(catScore / catMax * 100))
		}
		scores = append(scores, CategoryScore{
			ID:         cat.ID,
			Name:       cat.Name,
			ShortName:  shortName(cat.Name),
			Score:      catScore,
			Max:        catMax,
			Percentage: pct,
		})
	}

	if penalty {
		total -= weakPenalty
	}
	if total < 0 {
		total = 0
	}
	total = Round2(total)

	percent := 0.0
	if max > 0 {
		percent = total / max * 100
	}

	ranking := RankPlaceholder
	if total > 0 || penalty {
		switch {
		case total >= 90:
			ranking = RankExcellent
		case total >= 70:
			ranking = RankPass
		default:
			ranking = RankFail
		}
	}

	return Summary{
		CategoryScores: scores,
		TotalScore:     total,
		MaxTotalScore:  max,
		Percent:        percent,
		Ranking:        ranking,
		PenaltyApplied: penalty,
	}
}

// shortNameKeywords maps lowercase category-name substrings to the compact
// labels shown on gauges. Checked in order; first hit wins.
var shortNameKeywords = []struct {
	substr string
	short  string
}{
	{"vận hành", "Vận hành"},
	{"an toàn", "An toàn"},
	{"thiết bị", "Thiết bị"},
	{"nhân sự", "Nhân sự"},
	{"báo cáo", "Báo cáo"},
	{"kỷ luật", "Kỷ luật"},
	{"chuyên môn", "Chuyên môn"},
}

func shortName(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range shortNameKeywords {
		if strings.Contains(lower, kw.substr) {
			return kw.short
		}
	}
	// fall back to the text after the leading numeral ("1. FOO" -> "FOO")
	if _, rest, ok := strings.Cut(name, "."); ok {
		if s := strings.TrimSpace(rest); s != "" {
			return s
		}
	}
	return name
}
