package employee

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

// Service lists employees together with the name of their supermarket.
type Service interface {
	List(ctx context.Context) ([]domain.Row, error)
}

type employeeStore interface {
	List(ctx context.Context) ([]domain.Row, error)
}

type service struct {
	repo employeeStore
}

func NewService(repo employeeStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Row, error) {
	return s.repo.List(ctx)
}
