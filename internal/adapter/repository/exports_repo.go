package repository

import (
	"context"
	"errors"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ExportRepo struct {
	pool *pgxpool.Pool
}

func NewExportRepo(pool *pgxpool.Pool) *ExportRepo {
	return &ExportRepo{pool: pool}
}

func (r *ExportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	var (
		j      domain.ExportJob
		status string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, session_id, status, file_name, storage_key, pages, size_bytes, error, created_at, updated_at
		FROM resume_exports WHERE id = $1`, id).
		Scan(&j.ID, &j.SessionID, &status, &j.FileName, &j.StorageKey, &j.Pages, &j.SizeBytes, &j.Error, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	j.Status = domain.ExportStatus(status)
	return &j, nil
}

func (r *ExportRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO resume_exports (id, session_id, status, file_name, storage_key, pages, size_bytes, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, file_name = EXCLUDED.file_name, storage_key = EXCLUDED.storage_key, pages = EXCLUDED.pages, size_bytes = EXCLUDED.size_bytes, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.SessionID, string(j.Status), j.FileName, j.StorageKey, j.Pages, j.SizeBytes, j.Error, j.CreatedAt, j.UpdatedAt)
	return err
}
