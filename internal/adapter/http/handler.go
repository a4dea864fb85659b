package http

import (
	"encoding/json"
	"errors"
	"log/slog"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	sessions *usecase.SessionService
	exports  *usecase.ExportService
	log      *slog.Logger
}

func NewHandler(s *usecase.SessionService, e *usecase.ExportService, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{sessions: s, exports: e, log: log}
}

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/templates", h.Templates)

	r.Post("/score", h.ScoreResume)
	r.Post("/render", h.RenderResume)
	r.Post("/preview", h.PreviewResume)

	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/:id", h.GetSession)
	r.Put("/sessions/:id", h.ReplaceSession)
	r.Delete("/sessions/:id", h.DeleteSession)
	r.Put("/sessions/:id/template", h.SetTemplate)
	r.Get("/sessions/:id/progress", h.SessionProgress)
	r.Get("/sessions/:id/document", h.SessionDocument)
	r.Get("/sessions/:id/preview", h.SessionPreview)
	r.Get("/sessions/:id/gallery", h.SessionGallery)
	r.Post("/sessions/:id/exports", h.StartExport)

	r.Get("/exports/:id", h.GetExport)
	r.Get("/exports/:id/pdf", h.DownloadExport)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(model.Catalog())
}

type progressResp struct {
	Progress int                       `json:"progress"`
	Sections []usecase.SectionProgress `json:"sections"`
}

func progressOf(r model.ResumeData) progressResp {
	return progressResp{Progress: usecase.Score(r), Sections: usecase.Breakdown(r)}
}

func (h *Handler) ScoreResume(c *fiber.Ctx) error {
	r, err := decodeResume(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(progressOf(r))
}

func (h *Handler) RenderResume(c *fiber.Ctx) error {
	r, err := decodeResume(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(render.Render(r))
}

func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	r, err := decodeResume(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	return h.sendPreview(c, r)
}

func (h *Handler) sendPreview(c *fiber.Ctx, r model.ResumeData) error {
	html, err := render.RenderHTML(render.Render(r))
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// decodeResume checks body against the resume schema before decoding it.
func decodeResume(body []byte) (model.ResumeData, error) {
	var r model.ResumeData
	if !json.Valid(body) {
		return r, errInvalidPayload
	}
	if err := model.ValidateJSON(body); err != nil {
		return r, err
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return r, errInvalidPayload
	}
	return r, nil
}

var (
	errInvalidPayload = errors.New("invalid payload")
	errInvalidID      = errors.New("invalid id")
)

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// fail maps err to a status code and a {"error", "details"} body.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var (
		schemaErr *model.SchemaError
		dupErr    *model.DuplicateIDError
		notReady  *usecase.NotReadyError
	)
	switch {
	case errors.As(err, &schemaErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume", "details": schemaErr.Errors})
	case errors.As(err, &dupErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": dupErr.Error()})
	case errors.As(err, &notReady):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "resume not ready for export", "details": notReady.Problems})
	case errors.Is(err, errInvalidID), errors.Is(err, errInvalidPayload), errors.Is(err, usecase.ErrUnknownTemplate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, usecase.ErrExportNotReady):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	h.log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
