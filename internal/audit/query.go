package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Query filters the audit trail. From and To are civil dates; To is
// inclusive.
type Query struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Normalize clamps paging to sane values.
func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxPageLimit {
		q.Limit = DefaultPageLimit
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Matches applies the non-paging filters to a single row.
func (q Query) Matches(row models.AuditLog) bool {
	if q.Action != "" && row.Action != q.Action {
		return false
	}
	if q.Entity != "" && row.Entity != q.Entity {
		return false
	}
	if q.From != nil && row.CreatedAt.Before(*q.From) {
		return false
	}
	if q.To != nil && !row.CreatedAt.Before(q.To.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// Reader lists persisted audit rows, newest first, with the total match
// count.
type Reader interface {
	ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}
