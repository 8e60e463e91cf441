package health

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

type Service interface {
	// DBTime round-trips to the store and returns its current time as {now}.
	DBTime(ctx context.Context) (domain.Row, error)
}

type clock interface {
	Now(ctx context.Context) (domain.Row, error)
}

type service struct {
	clock clock
}

func NewService(c clock) Service {
	return &service{clock: c}
}

func (s *service) DBTime(ctx context.Context) (domain.Row, error) {
	return s.clock.Now(ctx)
}
