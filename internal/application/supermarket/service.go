package supermarket

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

type Service interface {
	List(ctx context.Context) ([]domain.Row, error)
}

type supermarketStore interface {
	List(ctx context.Context) ([]domain.Row, error)
}

type service struct {
	repo supermarketStore
}

func NewService(repo supermarketStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Row, error) {
	return s.repo.List(ctx)
}
