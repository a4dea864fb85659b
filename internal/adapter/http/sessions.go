package http

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	sess, err := h.sessions.Create(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) loadSession(c *fiber.Ctx) (*domain.Session, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	return h.sessions.Get(c.UserContext(), id)
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.Resume)
}

func (h *Handler) ReplaceSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	r, err := decodeResume(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	sess, err := h.sessions.Replace(c.UserContext(), id, r)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.Resume)
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.sessions.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type templateReq struct {
	Template model.Template `json:"template"`
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, errInvalidPayload)
	}
	sess, err := h.sessions.SetTemplate(c.UserContext(), id, req.Template)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.Resume)
}

func (h *Handler) SessionProgress(c *fiber.Ctx) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(progressOf(sess.Resume))
}

// withTemplateQuery applies ?template= without touching the stored snapshot.
func withTemplateQuery(c *fiber.Ctx, r model.ResumeData) model.ResumeData {
	if t := c.Query("template"); t != "" {
		r.Template = model.Template(t)
	}
	return r
}

func (h *Handler) SessionDocument(c *fiber.Ctx) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(render.Render(withTemplateQuery(c, sess.Resume)))
}

func (h *Handler) SessionPreview(c *fiber.Ctx) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	return h.sendPreview(c, withTemplateQuery(c, sess.Resume))
}

func (h *Handler) SessionGallery(c *fiber.Ctx) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	docs, err := render.RenderAll(c.UserContext(), sess.Resume)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(docs)
}
