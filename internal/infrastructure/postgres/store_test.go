package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/colis-timer-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStoreError_ServerError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: PgErrForeignKeyViolation, Message: "violates foreign key constraint"}
	err := newStoreError(fmt.Errorf("exec: %w", pgErr))

	assert.ErrorIs(t, err, domain.ErrStore)
	assert.Equal(t, PgErrForeignKeyViolation, err.SQLState())
	assert.Contains(t, err.Error(), "foreign_key_violation [23503]")

	var got *pgconn.PgError
	assert.True(t, errors.As(err, &got), "the driver error stays reachable")
}

func TestNewStoreError_UnlabelledCode(t *testing.T) {
	err := newStoreError(&pgconn.PgError{Code: "XX000", Message: "internal"})
	assert.Equal(t, "XX000", err.SQLState())
	assert.Contains(t, err.Error(), "[XX000]")
}

func TestNewStoreError_ClientSide(t *testing.T) {
	err := newStoreError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, err.SQLState())
	assert.Equal(t, "store: context deadline exceeded", err.Error())
}

// --- repositories over a mocked querier ---

type mockQuerier struct{ mock.Mock }

func (m *mockQuerier) Query(ctx context.Context, statement string, args ...any) ([]domain.Row, error) {
	a := m.Called(ctx, statement, args)
	if rows, _ := a.Get(0).([]domain.Row); rows != nil {
		return rows, a.Error(1)
	}
	return nil, a.Error(1)
}

func (m *mockQuerier) QueryOne(ctx context.Context, statement string, args ...any) (domain.Row, error) {
	a := m.Called(ctx, statement, args)
	if row, _ := a.Get(0).(domain.Row); row != nil {
		return row, a.Error(1)
	}
	return nil, a.Error(1)
}

func TestClockRepo_Now(t *testing.T) {
	q := &mockQuerier{}
	q.On("QueryOne", mock.Anything, "SELECT NOW()", []any(nil)).Return(domain.Row{"now": "2026-10-16T08:00:00Z"}, nil)

	row, err := NewClockRepo(q).Now(context.Background())
	require.NoError(t, err)
	assert.Contains(t, row, "now")
	q.AssertExpectations(t)
}

func TestSessionRepo_ListNewestFirst(t *testing.T) {
	q := &mockQuerier{}
	q.On("Query", mock.Anything, mock.MatchedBy(func(s string) bool {
		return s == "SELECT * FROM sessions ORDER BY heure DESC"
	}), []any(nil)).Return([]domain.Row{}, nil)

	rows, err := NewSessionRepo(q).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	q.AssertExpectations(t)
}

func TestSessionRepo_ListDetailedUsesInnerJoins(t *testing.T) {
	q := &mockQuerier{}
	q.On("Query", mock.Anything, sqlListSessionDetails, []any(nil)).Return([]domain.Row{}, nil)

	_, err := NewSessionRepo(q).ListDetailed(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sqlListSessionDetails, "JOIN employes e ON se.employe_id = e.id")
	assert.NotContains(t, sqlListSessionDetails, "LEFT JOIN")
	assert.Contains(t, sqlListSessionDetails, "ORDER BY se.heure DESC")
	q.AssertExpectations(t)
}

func TestSessionRepo_CreatePassesParameters(t *testing.T) {
	q := &mockQuerier{}
	inserted := domain.Row{"id": int64(41), "employe_id": int64(3), "nb_colis": int64(12)}
	q.On("QueryOne", mock.Anything, sqlInsertSession, []any{int64(3), int64(12)}).Return(inserted, nil)

	row, err := NewSessionRepo(q).Create(context.Background(), 3, 12)
	require.NoError(t, err)
	assert.Equal(t, inserted, row)
	q.AssertExpectations(t)
}

func TestSessionRepo_CreatePropagatesStoreError(t *testing.T) {
	q := &mockQuerier{}
	storeErr := newStoreError(&pgconn.PgError{Code: PgErrForeignKeyViolation})
	q.On("QueryOne", mock.Anything, sqlInsertSession, mock.Anything).Return(nil, storeErr)

	_, err := NewSessionRepo(q).Create(context.Background(), 999, 1)
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestSupermarketRepo_ListOldestFirst(t *testing.T) {
	q := &mockQuerier{}
	q.On("Query", mock.Anything, "SELECT * FROM supermarches ORDER BY id ASC", []any(nil)).
		Return([]domain.Row{{"id": int64(1), "nom": "Centre"}}, nil)

	rows, err := NewSupermarketRepo(q).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	q.AssertExpectations(t)
}

func TestEmployeeRepo_ListJoinsSupermarket(t *testing.T) {
	q := &mockQuerier{}
	q.On("Query", mock.Anything, sqlListEmployees, []any(nil)).Return([]domain.Row{}, nil)

	_, err := NewEmployeeRepo(q).List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, sqlListEmployees, "s.nom AS supermarche")
	assert.Contains(t, sqlListEmployees, "ORDER BY e.id ASC")
	q.AssertExpectations(t)
}
