package session

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
	"github.com/colis-timer-api/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Row, error)
	ListDetailed(ctx context.Context) ([]domain.Row, error)
	// Create records one work session. Missing or zero fields fail with domain.ErrBadRequest
	// before anything reaches the store.
	Create(ctx context.Context, req domain.CreateSessionRequest) (domain.Row, error)
}

type sessionStore interface {
	List(ctx context.Context) ([]domain.Row, error)
	ListDetailed(ctx context.Context) ([]domain.Row, error)
	Create(ctx context.Context, employeID, nbColis int64) (domain.Row, error)
}

type service struct {
	repo sessionStore
}

func NewService(repo sessionStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Row, error) {
	return s.repo.List(ctx)
}

func (s *service) ListDetailed(ctx context.Context) ([]domain.Row, error) {
	return s.repo.ListDetailed(ctx)
}

func (s *service) Create(ctx context.Context, req domain.CreateSessionRequest) (domain.Row, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, int64(req.EmployeID), int64(req.NbColis))
}
