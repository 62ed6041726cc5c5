package rubric

// Level is one of the three graded outcomes an item can receive.
type Level string

const (
	LevelGood    Level = "GOOD"
	LevelAverage Level = "AVERAGE"
	LevelWeak    Level = "WEAK"
)

// Valid reports whether l is a known rating level.
func (l Level) Valid() bool {
	switch l {
	case LevelGood, LevelAverage, LevelWeak:
		return true
	}
	return false
}

// Criterion describes one graded outcome of an item.
// ScorePercent is a fraction of the item's max points (1.0 = full score).
type Criterion struct {
	Label        string  `json:"label"`
	Description  string  `json:"description"`
	ScorePercent float64 `json:"score_percent"`
}

// Item is a single scored line in the rubric. The three criteria are fixed
// named fields rather than a map keyed by level, so malformed data cannot
// produce a missing-level lookup.
type Item struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // e.g. "1.1"
	Name      string    `json:"name"`
	MaxPoints float64   `json:"max_points"`
	Checklist []string  `json:"checklist,omitempty"`
	Good      Criterion `json:"good"`
	Average   Criterion `json:"average"`
	Weak      Criterion `json:"weak"`
}

// Criterion returns the graded criterion for the given level.
func (it Item) Criterion(l Level) (Criterion, bool) {
	switch l {
	case LevelGood:
		return it.Good, true
	case LevelAverage:
		return it.Average, true
	case LevelWeak:
		return it.Weak, true
	}
	return Criterion{}, false
}

// Category is an ordered group of items. Order is significant: it drives
// display order and the "<categoryIndex>.<itemIndex>" item IDs.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Role identifies one of the six fixed job roles, each with its own rubric.
type Role string

const (
	RoleManager     Role = "MANAGER"
	RoleShiftLeader Role = "SHIFT_LEADER"
	RoleOperator    Role = "OPERATOR"
	RoleDriver      Role = "DRIVER"
	RoleWorker      Role = "WORKER"
	RoleAccountant  Role = "ACCOUNTANT"
)

// RoleNames maps each role to its Vietnamese display label, as printed on
// evaluation forms and reports.
var RoleNames = map[Role]string{
	RoleManager:     "Quản Lý / Giám Đốc",
	RoleShiftLeader: "Trưởng Ca Vận Hành",
	RoleOperator:    "Nhân Viên Vận Hành",
	RoleDriver:      "Lái Xe / Vận Chuyển",
	RoleWorker:      "Lao Động Phổ Thông",
	RoleAccountant:  "Kế Toán / Thống Kê",
}

// Roles lists all roles in menu order.
var Roles = []Role{
	RoleManager,
	RoleShiftLeader,
	RoleOperator,
	RoleDriver,
	RoleWorker,
	RoleAccountant,
}
