package postgres

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

const sqlListEmployees = `
	SELECT e.id, e.nom, e.prenom, s.nom AS supermarche
	FROM employes e
	JOIN supermarches s ON e.supermarche_id = s.id
	ORDER BY e.id ASC`

// EmployeeRepo reads the employes table joined with each employee's supermarket.
type EmployeeRepo struct {
	q querier
}

func NewEmployeeRepo(q querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func (r *EmployeeRepo) List(ctx context.Context) ([]domain.Row, error) {
	return r.q.Query(ctx, sqlListEmployees)
}
