package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SessionRepo stores sessions in resume_sessions, one jsonb snapshot per row.
type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

func (r *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var (
		s   domain.Session
		raw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, resume, created_at, updated_at FROM resume_sessions WHERE id = $1`, id).
		Scan(&s.ID, &raw, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.Resume); err != nil {
		return nil, fmt.Errorf("decode resume of session %s: %w", id, err)
	}
	return &s, nil
}

func (r *SessionRepo) Save(ctx context.Context, s *domain.Session) error {
	resumeB, err := json.Marshal(s.Resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resume_sessions (id, resume, created_at, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET resume = EXCLUDED.resume, updated_at = EXCLUDED.updated_at`,
		s.ID, resumeB, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *SessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resume_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
