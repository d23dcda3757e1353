package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/workflow"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ContactHandler exposes the contact message workflow.
type ContactHandler struct {
	backend workflow.ContactBackend
	toast   workflow.Toaster
}

// NewContactHandler constructs handler.
func NewContactHandler(backend workflow.ContactBackend, toast workflow.Toaster) *ContactHandler {
	return &ContactHandler{backend: backend, toast: toast}
}

// Create POST /api/v1/contact-messages.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rec := &workflow.RecordingToaster{}
	form := workflow.NewContactWorkflow(h.backend, workflow.Tee(rec, h.toast)).NewForm()
	form.Fields = workflow.ContactFields{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	msg, err := form.Submit(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":  contactResponse(msg),
		"toast": firstToast(rec),
	})
}

// List GET /api/v1/contact-messages.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	var status *domain.ContactStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ContactStatus(raw)
		status = &s
	}

	wf := workflow.NewContactWorkflow(h.backend, h.toast)
	records, err := wf.List(c.UserContext(), status)
	if err != nil {
		return err
	}

	items := make([]dto.ContactMessageResponse, 0, len(records))
	for i := range records {
		items = append(items, contactResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /api/v1/contact-messages/:id/status. Silent update; no toast.
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	wf := workflow.NewContactWorkflow(h.backend, h.toast)
	if err := wf.SetStatus(c.UserContext(), c.Params("id"), domain.ContactStatus(req.Status)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"id": c.Params("id"), "status": req.Status}})
}

func contactResponse(msg *domain.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.CreatedAt,
	}
}
