package postgres

import (
	"context"

	"github.com/colis-timer-api/internal/domain"
)

const (
	sqlListSessions = `SELECT * FROM sessions ORDER BY heure DESC`

	sqlListSessionDetails = `
		SELECT se.id, se.nb_colis, se.heure,
		       e.nom AS employe_nom, e.prenom AS employe_prenom,
		       s.nom AS supermarche
		FROM sessions se
		JOIN employes e ON se.employe_id = e.id
		JOIN supermarches s ON e.supermarche_id = s.id
		ORDER BY se.heure DESC`

	sqlInsertSession = `INSERT INTO sessions (employe_id, nb_colis) VALUES (?, ?) RETURNING *`
)

// SessionRepo provides the statements for the sessions table.
// Sessions are append-only: there is no update or delete.
type SessionRepo struct {
	q querier
}

func NewSessionRepo(q querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// List returns every session, newest first.
func (r *SessionRepo) List(ctx context.Context) ([]domain.Row, error) {
	return r.q.Query(ctx, sqlListSessions)
}

// ListDetailed joins each session with its employee and supermarket, newest first.
// Sessions whose employee or supermarket no longer exists are left out.
func (r *SessionRepo) ListDetailed(ctx context.Context) ([]domain.Row, error) {
	return r.q.Query(ctx, sqlListSessionDetails)
}

// Create inserts one session and returns the stored row, including the
// generated id and default heure.
func (r *SessionRepo) Create(ctx context.Context, employeID, nbColis int64) (domain.Row, error) {
	return r.q.QueryOne(ctx, sqlInsertSession, employeID, nbColis)
}
