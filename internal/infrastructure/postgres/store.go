package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/colis-timer-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the service logs with a readable label.
const (
	PgErrForeignKeyViolation = "23503" // foreign_key_violation
	PgErrNotNullViolation    = "23502" // not_null_violation
	PgErrCheckViolation      = "23514" // check_violation
	PgErrInvalidTextRep      = "22P02" // invalid_text_representation
	PgErrUndefinedTable      = "42P01" // undefined_table
	PgErrSyntaxError         = "42601" // syntax_error
	PgErrConnectionFailure   = "08006" // connection_failure
	PgErrAdminShutdown       = "57P01" // admin_shutdown
)

var pgErrLabels = map[string]string{
	PgErrForeignKeyViolation: "foreign_key_violation",
	PgErrNotNullViolation:    "not_null_violation",
	PgErrCheckViolation:      "check_violation",
	PgErrInvalidTextRep:      "invalid_text_representation",
	PgErrUndefinedTable:      "undefined_table",
	PgErrSyntaxError:         "syntax_error",
	PgErrConnectionFailure:   "connection_failure",
	PgErrAdminShutdown:       "admin_shutdown",
}

// StoreError is returned for every failed statement. It matches domain.ErrStore
// with errors.Is and exposes the PostgreSQL SQLSTATE when the server sent one.
type StoreError struct {
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	if label, ok := pgErrLabels[e.Code]; ok {
		return fmt.Sprintf("store: %s [%s]: %v", label, e.Code, e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("store: [%s]: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("store: %v", e.Err)
}

func (e *StoreError) Unwrap() []error { return []error{domain.ErrStore, e.Err} }

// SQLState returns the server error code, or "" for client-side failures.
func (e *StoreError) SQLState() string { return e.Code }

func newStoreError(err error) *StoreError {
	se := &StoreError{Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	return se
}

// Store executes parameterized statements against the pool.
// It is safe for concurrent use; the pool handles connection checkout.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Query runs one statement with positional ? parameters and returns every row
// in the order the store produced them. An empty result is an empty, non-nil slice.
func (s *Store) Query(ctx context.Context, statement string, args ...any) ([]domain.Row, error) {
	var raw []map[string]any
	if err := s.db.WithContext(ctx).Raw(statement, args...).Scan(&raw).Error; err != nil {
		return nil, newStoreError(err)
	}
	rows := make([]domain.Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, domain.Row(r))
	}
	return rows, nil
}

// QueryOne is Query for statements that must yield a row, such as INSERT ... RETURNING.
func (s *Store) QueryOne(ctx context.Context, statement string, args ...any) (domain.Row, error) {
	rows, err := s.Query(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("statement returned no rows: %w", domain.ErrNotFound)
	}
	return rows[0], nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return newStoreError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return newStoreError(err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
