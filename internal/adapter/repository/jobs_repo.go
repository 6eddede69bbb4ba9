package repository

import (
	"context"
	"encoding/json"

	"cv-genius/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportJobsRepo records export attempts. The audit row carries operation
// metadata only; resume content never touches the database. A nil pool
// turns every call into a no-op so the server runs without a database.
type ExportJobsRepo struct {
	pool *pgxpool.Pool
}

func NewExportJobsRepo(pool *pgxpool.Pool) *ExportJobsRepo {
	return &ExportJobsRepo{pool: pool}
}

func (r *ExportJobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)

	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, filename, template, status, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET filename = EXCLUDED.filename, template = EXCLUDED.template, status = EXCLUDED.status, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.Filename, j.Template, j.Status, metaB, j.CreatedAt, j.UpdatedAt)

	return err
}
