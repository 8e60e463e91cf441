package postgres

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

// querier is the part of *Store the table repositories need.
type querier interface {
	Query(ctx context.Context, statement string, args ...any) ([]domain.Row, error)
	QueryOne(ctx context.Context, statement string, args ...any) (domain.Row, error)
}

const sqlNow = `SELECT NOW()`

// ClockRepo reads the store clock; it doubles as a connectivity probe.
type ClockRepo struct {
	q querier
}

func NewClockRepo(q querier) *ClockRepo {
	return &ClockRepo{q: q}
}

// Now returns the single {now} row.
func (r *ClockRepo) Now(ctx context.Context) (domain.Row, error) {
	return r.q.QueryOne(ctx, sqlNow)
}
