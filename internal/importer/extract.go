package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/rubric"
	"github.com/triviet-energy/kpi-gateway/internal/scoring"
)

// ratingWindow is how far past an item's printed name the level keywords are
// searched for, in runes. Flattened PDF text keeps an item's row roughly
// this close to its name; a larger window raises misattribution risk.
const ratingWindow = 300

// Field patterns anchor on the printed labels and capture the rest of the
// line. Values may carry the dot-fill used as underline filler on the form.
var (
	reName       = regexp.MustCompile(`Họ và tên[ \t]*:?[ \t]*([^\n]+)`)
	reEmployeeID = regexp.MustCompile(`Mã nhân viên[ \t]*:?[ \t]*([^\n]+)`)
	rePosition   = regexp.MustCompile(`Chức vụ[ \t]*:?[ \t]*([^\n]+)`)
	reDepartment = regexp.MustCompile(`Bộ phận[ \t]*:?[ \t]*([^\n]+)`)
	reReportDate = regexp.MustCompile(`Ngày lập[^\n]*?(\d{2})/(\d{2})/(\d{4})`)
	reMonth      = regexp.MustCompile(`THÁNG\s*(\d{1,2})/(\d{4})`)
	reRoleLabel  = regexp.MustCompile(`Biểu mẫu đánh giá[ \t]*:?[ \t]*([^\n]+)`)
)

// ParseReport reconstructs an evaluation from the extracted text of a
// previously printed report. It is best-effort: fields whose labels are not
// found keep the caller's current values, an unmatched role label keeps the
// caller's current role, and items without a nearby level keyword stay
// unrated. It never fails; degraded output is the contract.
func ParseReport(fullText string, current evaluation.EmployeeInfo, currentRole rubric.Role) evaluation.PendingImport {
	info := current

	if v, ok := captureLine(reName, fullText); ok {
		info.Name = v
	}
	if v, ok := captureLine(reEmployeeID, fullText); ok {
		info.ID = v
	}
	if v, ok := captureLine(rePosition, fullText); ok {
		info.Position = v
	}
	if v, ok := captureLine(reDepartment, fullText); ok {
		info.Department = v
	}
	if m := reReportDate.FindStringSubmatch(fullText); m != nil {
		// printed as DD/MM/YYYY; stored ISO
		info.ReportDate = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	}

	month := ""
	if m := reMonth.FindStringSubmatch(fullText); m != nil {
		mm := m[1]
		if len(mm) == 1 {
			mm = "0" + mm
		}
		month = m[2] + "-" + mm
	}

	role := currentRole
	if v, ok := captureLine(reRoleLabel, fullText); ok {
		if r, found := rubric.DetectRole(v); found {
			role = r
		}
	}
	if _, ok := rubric.RoleNames[role]; !ok {
		role = rubric.RoleManager
	}

	return evaluation.PendingImport{
		Info:    info,
		Month:   month,
		Role:    role,
		Ratings: reconstructRatings(fullText, rubric.ForRole(role)),
	}
}

// reconstructRatings locates each rubric item's printed name and scans a
// bounded window after it for level keywords. First keyword wins, in
// GOOD > AVERAGE > WEAK priority; no keyword leaves the item unrated.
// Free-text notes are not recoverable from flattened text and are dropped.
func reconstructRatings(fullText string, cats []rubric.Category) scoring.Ratings {
	ratings := scoring.Ratings{}
	for _, cat := range cats {
		for _, it := range cat.Items {
			idx := strings.Index(fullText, it.Name)
			if idx < 0 {
				continue
			}
			level, ok := levelNear(fullText[idx+len(it.Name):])
			if !ok {
				continue
			}
			ratings[it.ID] = scoring.Rating{
				Level:       level,
				ActualScore: scoring.ItemScore(it, level),
			}
		}
	}
	return ratings
}

func levelNear(tail string) (rubric.Level, bool) {
	window := tail
	if r := []rune(tail); len(r) > ratingWindow {
		window = string(r[:ratingWindow])
	}
	switch {
	case strings.Contains(window, "TỐT"):
		return rubric.LevelGood, true
	case strings.Contains(window, "TBÌNH"), strings.Contains(window, "TB"):
		return rubric.LevelAverage, true
	case strings.Contains(window, "YẾU"):
		return rubric.LevelWeak, true
	}
	return "", false
}

// captureLine applies a label-anchored pattern and cleans the captured value:
// surrounding whitespace and the trailing dot-fill are stripped. An empty
// cleaned value counts as no match so blank underlines never overwrite
// existing fields.
func captureLine(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), "."))
	if v == "" {
		return "", false
	}
	return v, true
}
