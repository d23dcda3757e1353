package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/whatsapp"
	"github.com/spec-kit/clinic-service/internal/workflow"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// AppointmentsHandler exposes the appointment request workflow.
type AppointmentsHandler struct {
	backend workflow.AppointmentBackend
	toast   workflow.Toaster
	clinic  config.ClinicConfig
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(backend workflow.AppointmentBackend, toast workflow.Toaster, clinic config.ClinicConfig) *AppointmentsHandler {
	return &AppointmentsHandler{backend: backend, toast: toast, clinic: clinic}
}

// Create POST /api/v1/appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rec := &workflow.RecordingToaster{}
	form := workflow.NewAppointmentWorkflow(h.backend, workflow.Tee(rec, h.toast)).NewForm()
	form.Fields = workflow.AppointmentFields{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	}

	appt, err := form.Submit(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":  appointmentResponse(appt),
		"toast": firstToast(rec),
	})
}

// List GET /api/v1/appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	var status *domain.AppointmentStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.AppointmentStatus(raw)
		status = &s
	}

	wf := workflow.NewAppointmentWorkflow(h.backend, h.toast)
	records, err := wf.List(c.UserContext(), status)
	if err != nil {
		return err
	}

	items := make([]dto.AppointmentResponse, 0, len(records))
	for i := range records {
		items = append(items, appointmentResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /api/v1/appointments/:id/status.
func (h *AppointmentsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	rec := &workflow.RecordingToaster{}
	wf := workflow.NewAppointmentWorkflow(h.backend, workflow.Tee(rec, h.toast))
	if err := wf.SetStatus(c.UserContext(), c.Params("id"), domain.AppointmentStatus(req.Status)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"id": c.Params("id"), "status": req.Status},
		"toast": firstToast(rec),
	})
}

// WhatsAppLink GET /api/v1/appointments/whatsapp-link.
// Returns the deep link that opens a pre-filled booking chat with the clinic.
func (h *AppointmentsHandler) WhatsAppLink(c *fiber.Ctx) error {
	link := whatsapp.BookingLink(h.clinic.WhatsAppNumber, h.clinic.Name, whatsapp.BookingDraft{
		Name:          c.Query("name"),
		Service:       c.Query("service"),
		PreferredDate: c.Query("preferred_date"),
		PreferredTime: c.Query("preferred_time"),
	})
	return c.JSON(fiber.Map{"data": fiber.Map{"url": link}})
}

func appointmentResponse(appt *domain.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:            appt.ID,
		Name:          appt.Name,
		Phone:         appt.Phone,
		Email:         appt.Email,
		Service:       appt.Service,
		PreferredDate: appt.PreferredDate,
		PreferredTime: appt.PreferredTime,
		Message:       appt.Message,
		Status:        appt.Status,
		CreatedAt:     appt.CreatedAt,
		UpdatedAt:     appt.UpdatedAt,
	}
}
