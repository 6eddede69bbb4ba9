package repository

import (
	"context"
	"encoding/json"

	"cv-genius/internal/domain"
)

// Recent returns the latest export audit rows, newest first. Like Save it
// is best-effort: without a pool it reports an empty history.
func (r *ExportJobsRepo) Recent(ctx context.Context, limit int) ([]domain.ExportJob, error) {
	if r.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `SELECT id, filename, template, status, metadata, created_at, updated_at
		FROM export_jobs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.ExportJob
	for rows.Next() {
		var j domain.ExportJob
		var metaB []byte
		if err := rows.Scan(&j.ID, &j.Filename, &j.Template, &j.Status, &metaB, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		if len(metaB) > 0 {
			_ = json.Unmarshal(metaB, &j.Metadata)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
