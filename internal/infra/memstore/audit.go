package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// AuditTrail records dispatched events synchronously and serves them back
// as audit rows.
type AuditTrail struct {
	mu   sync.Mutex
	rows []models.AuditLog

	// Now stamps new rows; defaults to time.Now.
	Now func() time.Time
}

func (a *AuditTrail) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	row := audit.ToModel(ev)
	row.ID = uint(len(a.rows) + 1)
	row.CreatedAt = time.Now()
	if a.Now != nil {
		row.CreatedAt = a.Now()
	}
	a.rows = append(a.rows, row)
}

func (a *AuditTrail) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.rows))
	for i, row := range a.rows {
		out[i] = row.Action
	}
	return out
}

func (a *AuditTrail) ListAuditLogs(_ context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	q = q.Normalize()
	var matched []models.AuditLog
	for i := len(a.rows) - 1; i >= 0; i-- {
		if q.Matches(a.rows[i]) {
			matched = append(matched, a.rows[i])
		}
	}

	total := int64(len(matched))
	start := q.Offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := min(start+q.Limit, len(matched))
	return matched[start:end], total, nil
}

var _ audit.Reader = (*AuditTrail)(nil)
