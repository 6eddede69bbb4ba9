package export

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-genius/internal/domain"
	"cv-genius/internal/model"
)

type fakeRenderer struct {
	html string
	err  error
}

func (f fakeRenderer) Render(model.ResumeData, model.ResumeTheme) (string, error) {
	return f.html, f.err
}

type fakeRaster struct {
	fn func(ctx context.Context, html string) ([]byte, error)
}

func (f fakeRaster) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return f.fn(ctx, html)
}

type memRepo struct {
	mu    sync.Mutex
	saves []domain.ExportJob
}

func (m *memRepo) Save(_ context.Context, j *domain.ExportJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, *j)
	return nil
}

func (m *memRepo) last() domain.ExportJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[len(m.saves)-1]
}

func resume(name string) model.ResumeData {
	return model.ResumeData{PersonalDetails: model.PersonalDetails{FullName: name}}
}

func TestExportSuccess(t *testing.T) {
	repo := &memRepo{}
	raster := fakeRaster{fn: func(_ context.Context, html string) ([]byte, error) {
		assert.Equal(t, "<html>ok</html>", html)
		return []byte("%PDF-1.4 fake"), nil
	}}
	e := NewExporter(fakeRenderer{html: "<html>ok</html>"}, raster, repo)

	res, err := e.Export(context.Background(), resume("Alex Morgan"), model.DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), res.PDF)
	assert.Equal(t, "Alex_Morgan_CV-Genius.pdf", res.Filename)

	last := repo.last()
	assert.Equal(t, domain.ExportStatusCompleted, last.Status)
	assert.Equal(t, "modern", last.Template)
}

func TestExportRejectsConcurrent(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	raster := fakeRaster{fn: func(context.Context, string) ([]byte, error) {
		once.Do(func() {
			close(entered)
			<-release
		})
		return []byte("%PDF"), nil
	}}
	e := NewExporter(fakeRenderer{html: "x"}, raster, nil)

	done := make(chan error, 1)
	go func() {
		_, err := e.Export(context.Background(), resume("A"), model.DefaultTheme())
		done <- err
	}()

	<-entered
	_, err := e.Export(context.Background(), resume("B"), model.DefaultTheme())
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)

	// Busy flag clears once the first export resolves.
	_, err = e.Export(context.Background(), resume("C"), model.DefaultTheme())
	require.NoError(t, err)
}

func TestExportRejectsNonPDFOutput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &memRepo{}
	raster := fakeRaster{fn: func(context.Context, string) ([]byte, error) {
		return []byte("<html>not a pdf</html>"), nil
	}}
	e := NewExporter(fakeRenderer{html: "x"}, raster, repo)

	_, err := e.Export(ctx, resume("A"), model.DefaultTheme())
	require.Error(t, err)
	assert.Equal(t, domain.ExportStatusFailed, repo.last().Status)
}

func TestExportRetriesRasterizer(t *testing.T) {
	calls := 0
	raster := fakeRaster{fn: func(context.Context, string) ([]byte, error) {
		calls++
		if calls < 2 {
			return nil, errors.New("chrome crashed")
		}
		return []byte("%PDF-1.4"), nil
	}}
	e := NewExporter(fakeRenderer{html: "x"}, raster, nil)

	res, err := e.Export(context.Background(), resume("A"), model.DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []byte("%PDF-1.4"), res.PDF)
}

func TestExportRenderFailure(t *testing.T) {
	repo := &memRepo{}
	e := NewExporter(fakeRenderer{err: errors.New("bad template")}, fakeRaster{fn: func(context.Context, string) ([]byte, error) {
		t.Error("rasterizer must not run when rendering fails")
		return nil, nil
	}}, repo)

	_, err := e.Export(context.Background(), resume("A"), model.DefaultTheme())
	require.Error(t, err)
	assert.Equal(t, domain.ExportStatusFailed, repo.last().Status)
}
