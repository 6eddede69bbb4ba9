package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"cv-genius/internal/ai"
	"cv-genius/internal/domain"
	"cv-genius/internal/export"
	"cv-genius/internal/model"
	"cv-genius/internal/render"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxPhotoBytes caps profile photo uploads at 5MB.
const MaxPhotoBytes = 5 * 1024 * 1024

// AIService is the slice of the assist bridge the handlers use. A nil
// service means the bridge is not configured; assist endpoints answer 503
// and everything else keeps working.
type AIService interface {
	EnhanceText(ctx context.Context, text, fieldContext string) (string, error)
	GenerateSummary(ctx context.Context, jobTitle string, skills []string, experience string) (string, error)
	SuggestDesign(ctx context.Context, description string) (model.ThemeSuggestion, error)
	EditImage(ctx context.Context, imageData, instruction string) (string, error)
}

type Exporter interface {
	Export(ctx context.Context, data model.ResumeData, theme model.ResumeTheme) (export.Result, error)
}

// ExportHistory lists past export audit rows. Optional; nil disables the
// history endpoint's data without failing it.
type ExportHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.ExportJob, error)
}

type Handler struct {
	renderer   *render.Renderer
	exporter   Exporter
	aiSvc      AIService
	history    ExportHistory
	schemaPath string
}

func NewHandler(renderer *render.Renderer, exporter Exporter, aiSvc AIService, history ExportHistory, schemaPath string) *Handler {
	if schemaPath == "" {
		schemaPath = model.DefaultSchemaPath
	}
	return &Handler{renderer: renderer, exporter: exporter, aiSvc: aiSvc, history: history, schemaPath: schemaPath}
}

// Register wires every route onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)
	app.Get("/resume/sample", h.SampleResume)
	app.Post("/resume/validate", h.ValidateResume)
	app.Post("/render", h.Render)
	app.Post("/export", h.Export)
	app.Get("/exports/recent", h.RecentExports)
	app.Get("/preview/scale", h.PreviewScale)
	app.Post("/photos", h.UploadPhoto)
	app.Post("/ai/enhance", h.AIEnhance)
	app.Post("/ai/summary", h.AISummary)
	app.Post("/ai/design", h.AIDesign)
	app.Post("/ai/image", h.AIImage)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// SampleResume returns the demo resume used to showcase templates before
// the user has entered anything.
func (h *Handler) SampleResume(c *fiber.Ctx) error {
	return c.JSON(model.SampleResume())
}

// ValidateResume checks a payload against the resume schema. Validation is
// advisory; the renderer accepts partial data regardless.
func (h *Handler) ValidateResume(c *fiber.Ctx) error {
	var data map[string]interface{}
	if err := json.Unmarshal(c.Body(), &data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateResumeAgainst(h.schemaPath, data); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"valid": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"valid": true})
}

type renderReq struct {
	Data    model.ResumeData   `json:"data"`
	Theme   *model.ResumeTheme `json:"theme"`
	Preview bool               `json:"preview"`
}

func (r *renderReq) theme() model.ResumeTheme {
	if r.Theme == nil {
		return model.DefaultTheme()
	}
	return *r.Theme
}

// Render returns the resume markup for the requested template variant.
// Preview mode adds the app footer; export mode does not.
func (h *Handler) Render(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	var html string
	var err error
	if req.Preview {
		html, err = h.renderer.RenderPreview(req.Data, req.theme())
	} else {
		html, err = h.renderer.Render(req.Data, req.theme())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Export runs the PDF pipeline. While one export is in flight any other
// request answers 409, mirroring the disabled download control.
func (h *Handler) Export(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := h.exporter.Export(c.Context(), req.Data, req.theme())
	if err != nil {
		if errors.Is(err, export.ErrBusy) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "an export is already in progress"})
		}
		slog.Error("export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.PDF)
}

// RecentExports lists the latest export audit entries.
func (h *Handler) RecentExports(c *fiber.Ctx) error {
	if h.history == nil {
		return c.JSON(fiber.Map{"exports": []domain.ExportJob{}})
	}
	limit := c.QueryInt("limit", 20)
	jobs, err := h.history.Recent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to load export history"})
	}
	if jobs == nil {
		jobs = []domain.ExportJob{}
	}
	return c.JSON(fiber.Map{"exports": jobs})
}

// PreviewScale reports the display scale for a given container width so
// the A4 page fits without overflowing.
func (h *Handler) PreviewScale(c *fiber.Ctx) error {
	raw := c.Query("width")
	width, err := strconv.ParseFloat(raw, 64)
	if err != nil || width < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid width"})
	}
	return c.JSON(fiber.Map{"scale": render.ComputeScale(width)})
}

// UploadPhoto accepts a profile photo, enforces the 5MB cap and returns
// the image as a data URL with the photo transform reset to its neutral
// position.
func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "photo file is required"})
	}
	if fh.Size > MaxPhotoBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "image size should be less than 5MB"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to read photo"})
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unable to read photo"})
	}
	if len(raw) > MaxPhotoBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "image size should be less than 5MB"})
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(raw)
	}

	return c.JSON(fiber.Map{
		"id":          uuid.New().String(),
		"photoUrl":    "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw),
		"photoConfig": model.DefaultPhotoConfig(),
	})
}

func (h *Handler) aiUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "assistant is not configured"})
}

type enhanceReq struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

func (h *Handler) AIEnhance(c *fiber.Ctx) error {
	if h.aiSvc == nil {
		return h.aiUnavailable(c)
	}
	var req enhanceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.aiSvc.EnhanceText(c.Context(), req.Text, req.Context)
	if err != nil {
		if errors.Is(err, ai.ErrEnhancementFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to enhance text"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"text": out})
}

type summaryReq struct {
	JobTitle   string   `json:"jobTitle"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

func (h *Handler) AISummary(c *fiber.Ctx) error {
	if h.aiSvc == nil {
		return h.aiUnavailable(c)
	}
	var req summaryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	out, err := h.aiSvc.GenerateSummary(c.Context(), req.JobTitle, req.Skills, req.Experience)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to generate summary"})
	}
	return c.JSON(fiber.Map{"summary": out})
}

type designReq struct {
	Description string             `json:"description"`
	Current     *model.ResumeTheme `json:"current"`
}

// AIDesign maps a free-text description onto the closed template and font
// sets. Unknown fields in the suggestion keep their current values; a
// failed suggestion falls back to the default theme rather than erroring.
func (h *Handler) AIDesign(c *fiber.Ctx) error {
	if h.aiSvc == nil {
		return h.aiUnavailable(c)
	}
	var req designReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	current := model.DefaultTheme()
	if req.Current != nil {
		current = *req.Current
	}

	suggestion, err := h.aiSvc.SuggestDesign(c.Context(), req.Description)
	if err != nil {
		slog.Warn("design suggestion failed, using default theme", "error", err)
		return c.JSON(fiber.Map{"theme": model.DefaultTheme(), "fallback": true})
	}
	return c.JSON(fiber.Map{"theme": suggestion.Merge(current)})
}

type imageReq struct {
	Image       string `json:"image"`
	Instruction string `json:"instruction"`
}

func (h *Handler) AIImage(c *fiber.Ctx) error {
	if h.aiSvc == nil {
		return h.aiUnavailable(c)
	}
	var req imageReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image is required"})
	}
	out, err := h.aiSvc.EditImage(c.Context(), req.Image, req.Instruction)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to edit image"})
	}
	// Editing swaps the image in place; the crop only resets on upload.
	return c.JSON(fiber.Map{"image": out})
}
