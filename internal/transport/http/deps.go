package http

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

// ClockRepository is the minimal interface the router requires to probe the store.
type ClockRepository interface {
	Now(ctx context.Context) (domain.Row, error)
}

// SessionRepository is the minimal interface the router requires from a session store.
type SessionRepository interface {
	List(ctx context.Context) ([]domain.Row, error)
	ListDetailed(ctx context.Context) ([]domain.Row, error)
	Create(ctx context.Context, employeID, nbColis int64) (domain.Row, error)
}

// SupermarketRepository is the minimal interface the router requires from a supermarket store.
type SupermarketRepository interface {
	List(ctx context.Context) ([]domain.Row, error)
}

// EmployeeRepository is the minimal interface the router requires from an employee store.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Row, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ClockRepo       ClockRepository
	SessionRepo     SessionRepository
	SupermarketRepo SupermarketRepository
	EmployeeRepo    EmployeeRepository
}
