package syncx

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Session event types written to the audit log.
const (
	EventRoleSelected   = "RoleSelected"
	EventReportImported = "ReportImported"
	EventReportViewed   = "ReportViewed"
)

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type EventRepo struct {
	db     *sql.DB
	siteID string
}

func NewEventRepo(db *sql.DB, siteID string) *EventRepo {
	if siteID == "" {
		siteID = "local"
	}
	return &EventRepo{db: db, siteID: siteID}
}

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	if e.SiteID == "" {
		e.SiteID = r.siteID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// Record marshals payload and appends an event keyed by userID. Best-effort:
// audit failures never surface to the interactive path, so the error is
// returned for logging only.
func (r *EventRepo) Record(ctx context.Context, typ, userID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.Append(ctx, Event{Type: typ, Key: userID, DataJSON: string(data)})
}
