package postgres

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

const sqlListSupermarkets = `SELECT * FROM supermarches ORDER BY id ASC`

// SupermarketRepo reads the supermarches table. Rows are maintained outside this service.
type SupermarketRepo struct {
	q querier
}

func NewSupermarketRepo(q querier) *SupermarketRepo {
	return &SupermarketRepo{q: q}
}

func (r *SupermarketRepo) List(ctx context.Context) ([]domain.Row, error) {
	return r.q.Query(ctx, sqlListSupermarkets)
}
