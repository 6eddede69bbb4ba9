package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"cv-genius/internal/domain"
	"cv-genius/internal/model"
)

// ErrBusy is returned while another export is in flight. A single export
// runs at a time; the triggering control stays disabled until it resolves.
var ErrBusy = errors.New("export: another export is in progress")

type Rasterizer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type PageRenderer interface {
	Render(data model.ResumeData, theme model.ResumeTheme) (string, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

// Exporter drives the capture pipeline: render the page at its fixed
// physical size (no display-only scale, no preview chrome), rasterize to
// A4, and hand back the document. Export attempts are recorded
// best-effort; a nil repo is tolerated.
type Exporter struct {
	renderer PageRenderer
	raster   Rasterizer
	repo     JobsRepo
	busy     atomic.Bool
}

func NewExporter(renderer PageRenderer, raster Rasterizer, repo JobsRepo) *Exporter {
	return &Exporter{renderer: renderer, raster: raster, repo: repo}
}

// Result is one exported document.
type Result struct {
	PDF      []byte
	Filename string
}

// Export produces a PDF for the given resume and theme. The busy state is
// cleared on every exit path, success or failure.
func (e *Exporter) Export(ctx context.Context, data model.ResumeData, theme model.ResumeTheme) (Result, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return Result{}, ErrBusy
	}
	defer e.busy.Store(false)

	job := &domain.ExportJob{
		ID:        uuid.New(),
		Filename:  Filename(data.PersonalDetails.FullName),
		Template:  string(theme.TemplateID.Normalize()),
		Status:    domain.ExportStatusPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	e.save(ctx, job)

	html, err := e.renderer.Render(data, theme)
	if err != nil {
		e.fail(ctx, job, err)
		return Result{}, fmt.Errorf("render page: %w", err)
	}

	pdf, err := e.rasterizeWithRetry(ctx, html)
	if err != nil {
		e.fail(ctx, job, err)
		return Result{}, err
	}

	job.Status = domain.ExportStatusCompleted
	job.Metadata["pdf_bytes"] = len(pdf)
	job.UpdatedAt = time.Now()
	e.save(ctx, job)

	return Result{PDF: pdf, Filename: job.Filename}, nil
}

// rasterizeWithRetry runs the rasterizer up to three times with
// exponential backoff, validating the basic PDF signature on each attempt.
func (e *Exporter) rasterizeWithRetry(ctx context.Context, html string) ([]byte, error) {
	attempts := 3
	var pdf []byte
	var renderErr error
	for i := 0; i < attempts; i++ {
		pdf, renderErr = e.raster.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf[:min(4, len(pdf))]), "%PDF") {
				return pdf, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		slog.Warn("export attempt failed", "attempt", i+1, "error", renderErr)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rasterize failed after %d attempts: %w", attempts, renderErr)
}

func (e *Exporter) fail(ctx context.Context, job *domain.ExportJob, err error) {
	job.Status = domain.ExportStatusFailed
	job.Metadata["error"] = err.Error()
	job.UpdatedAt = time.Now()
	e.save(ctx, job)
}

func (e *Exporter) save(ctx context.Context, job *domain.ExportJob) {
	if e.repo == nil {
		return
	}
	if err := e.repo.Save(ctx, job); err != nil {
		slog.Warn("failed to save export job", "job", job.ID.String(), "error", err)
	}
}
