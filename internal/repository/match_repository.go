package repository

import (
	"context"
	"errors"
	"time"

	"fitpartner/internal/database"
	"fitpartner/internal/domain/match"
	"fitpartner/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Create(ctx context.Context, m match.Match) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (id, user_a_id, user_b_id, status, compatibility_score, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$6)`,
		m.ID, m.UserAID, m.UserBID, m.Status, m.CompatibilityScore, now,
	)
	return err
}

func (r *PostgresMatchRepository) FindPendingFrom(ctx context.Context, initiatorID, targetID uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_a_id, user_b_id, status, compatibility_score, created_at, updated_at
		 FROM matches
		 WHERE user_a_id = $1 AND user_b_id = $2 AND status = $3
		 ORDER BY created_at ASC
		 LIMIT 1`,
		initiatorID, targetID, match.StatusPending,
	)

	var m match.Match
	err := row.Scan(&m.ID, &m.UserAID, &m.UserBID, &m.Status, &m.CompatibilityScore, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) Accept(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE matches SET status = $2, updated_at = $3 WHERE id = $1`,
		id, match.StatusAccepted, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return match.ErrNotFound
	}
	return nil
}

func (r *PostgresMatchRepository) PartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT CASE WHEN user_a_id = $1 THEN user_b_id ELSE user_a_id END
		 FROM matches
		 WHERE user_a_id = $1 OR user_b_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAcceptedByUser joins the other participant inline; an inner join means
// records whose profile row no longer exists are dropped from the result
// rather than reported as an error.
func (r *PostgresMatchRepository) ListAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]match.AcceptedMatch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.user_a_id, m.user_b_id, m.status, m.compatibility_score, m.created_at, m.updated_at,
		        u.id, u.name, u.email, u.password_hash, u.height, u.weight, u.goal, u.created_at, u.updated_at
		 FROM matches m
		 JOIN users u ON u.id = CASE WHEN m.user_a_id = $1 THEN m.user_b_id ELSE m.user_a_id END
		 WHERE (m.user_a_id = $1 OR m.user_b_id = $1) AND m.status = $2
		 ORDER BY m.created_at ASC`,
		userID, match.StatusAccepted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.AcceptedMatch, 0)
	for rows.Next() {
		var m match.Match
		var u user.User
		err := rows.Scan(
			&m.ID, &m.UserAID, &m.UserBID, &m.Status, &m.CompatibilityScore, &m.CreatedAt, &m.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Height, &u.Weight, &u.Goal, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, match.AcceptedMatch{Match: m, Partner: u})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (match.Stats, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*)
		 FROM matches
		 WHERE user_a_id = $1 OR user_b_id = $1
		 GROUP BY status`,
		userID,
	)
	if err != nil {
		return match.Stats{}, err
	}
	defer rows.Close()

	var st match.Stats
	for rows.Next() {
		var status match.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return match.Stats{}, err
		}
		switch status {
		case match.StatusPending:
			st.Pending = count
		case match.StatusAccepted:
			st.Accepted = count
		case match.StatusRejected:
			st.Rejected = count
		}
	}
	if err := rows.Err(); err != nil {
		return match.Stats{}, err
	}
	return st, nil
}
