package evaluation

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/triviet-energy/kpi-gateway/internal/rubric"
	"github.com/triviet-energy/kpi-gateway/internal/scoring"
)

var (
	ErrNoRole        = errors.New("no role selected")
	ErrUnknownItem   = errors.New("item not in active rubric")
	ErrInvalidLevel  = errors.New("invalid rating level")
	ErrNothingStaged = errors.New("no import staged")
)

// Store holds per-user evaluation sessions. All mutations are whole-session
// operations so callers never observe a half-applied change.
type Store interface {
	Get(userID string) Session
	SelectRole(userID string, role rubric.Role) (Session, error)
	Rate(userID, itemID string, level rubric.Level) (Session, error)
	SetNote(userID, itemID, note string) (Session, error)
	SetInfo(userID string, info EmployeeInfo) (Session, error)
	SetMonth(userID, month string) (Session, error)
	StageImport(userID string, p PendingImport) (Session, error)
	ConfirmImport(userID string) (Session, error)
	DiscardImport(userID string) (Session, error)
	Reset(userID string)
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewInMemoryStore returns the process-local session store. Sessions live
// and die with the process; only user accounts are durable.
func NewInMemoryStore() Store {
	return &memoryStore{sessions: map[string]Session{}}
}

func (m *memoryStore) get(userID string) Session {
	s, ok := m.sessions[userID]
	if !ok {
		now := time.Now()
		s = Session{
			Month:   now.Format("2006-01"),
			Info:    EmployeeInfo{ReportDate: now.Format("2006-01-02")},
			Ratings: scoring.Ratings{},
		}
	}
	if s.Ratings == nil {
		s.Ratings = scoring.Ratings{}
	}
	return s
}

func (m *memoryStore) Get(userID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.get(userID))
}

// SelectRole swaps the active rubric and clears all ratings: item IDs are
// role-scoped, so ratings are meaningless across roles. Position and
// department are preset from the role for convenience.
func (m *memoryStore) SelectRole(userID string, role rubric.Role) (Session, error) {
	name, ok := rubric.RoleNames[role]
	if !ok {
		return Session{}, errors.New("unknown role")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	s.Role = role
	s.Ratings = scoring.Ratings{}
	s.Info.Position = strings.TrimSpace(strings.SplitN(name, "/", 2)[0])
	if role == rubric.RoleAccountant {
		s.Info.Department = "Phòng Kế Toán"
	} else {
		s.Info.Department = "Phân Xưởng Vận Hành"
	}
	m.sessions[userID] = s
	return snapshot(s), nil
}

// Rate sets or overwrites the grade for one item. The actual score is
// derived from the item's criterion; an existing note on the item survives
// grade changes.
func (m *memoryStore) Rate(userID, itemID string, level rubric.Level) (Session, error) {
	if !level.Valid() {
		return Session{}, ErrInvalidLevel
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s.Role == "" {
		return Session{}, ErrNoRole
	}
	it, ok := rubric.FindItem(s.Rubric(), itemID)
	if !ok {
		return Session{}, ErrUnknownItem
	}
	r := s.Ratings[itemID]
	r.Level = level
	r.ActualScore = scoring.ItemScore(it, level)
	s.Ratings[itemID] = r
	m.sessions[userID] = s
	return snapshot(s), nil
}

// SetNote updates the free-text note for an item independently of its grade.
// Noting an unrated item is allowed; the entry stays unrated (zero level)
// until the user grades it.
func (m *memoryStore) SetNote(userID, itemID, note string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s.Role == "" {
		return Session{}, ErrNoRole
	}
	if _, ok := rubric.FindItem(s.Rubric(), itemID); !ok {
		return Session{}, ErrUnknownItem
	}
	r := s.Ratings[itemID]
	r.Notes = note
	s.Ratings[itemID] = r
	m.sessions[userID] = s
	return snapshot(s), nil
}

func (m *memoryStore) SetInfo(userID string, info EmployeeInfo) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	s.Info = info
	m.sessions[userID] = s
	return snapshot(s), nil
}

func (m *memoryStore) SetMonth(userID, month string) (Session, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return Session{}, errors.New("month must be YYYY-MM")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	s.Month = month
	m.sessions[userID] = s
	return snapshot(s), nil
}

// StageImport parks a reconstructed evaluation next to the live session.
// A new import replaces any previously staged one (last write wins).
func (m *memoryStore) StageImport(userID string, p PendingImport) (Session, error) {
	if _, ok := rubric.RoleNames[p.Role]; !ok {
		return Session{}, errors.New("unknown role in import")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	s.Pending = &p
	m.sessions[userID] = s
	return snapshot(s), nil
}

// ConfirmImport applies the staged import atomically: role, employee info,
// period, and the full rating set are replaced in one step.
func (m *memoryStore) ConfirmImport(userID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s.Pending == nil {
		return Session{}, ErrNothingStaged
	}
	p := *s.Pending
	s.Role = p.Role
	s.Info = p.Info
	if p.Month != "" {
		s.Month = p.Month
	}
	s.Ratings = p.Ratings
	if s.Ratings == nil {
		s.Ratings = scoring.Ratings{}
	}
	s.Pending = nil
	m.sessions[userID] = s
	return snapshot(s), nil
}

func (m *memoryStore) DiscardImport(userID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	s.Pending = nil
	m.sessions[userID] = s
	return snapshot(s), nil
}

// Reset drops the user's session entirely (logout teardown).
func (m *memoryStore) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// snapshot deep-copies the mutable parts so callers cannot alias the
// store's maps.
func snapshot(s Session) Session {
	ratings := make(scoring.Ratings, len(s.Ratings))
	for k, v := range s.Ratings {
		ratings[k] = v
	}
	s.Ratings = ratings
	if s.Pending != nil {
		p := *s.Pending
		pr := make(scoring.Ratings, len(p.Ratings))
		for k, v := range p.Ratings {
			pr[k] = v
		}
		p.Ratings = pr
		s.Pending = &p
	}
	return s
}
