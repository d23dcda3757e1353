package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/workflow"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DonorsHandler exposes the blood donor registration workflow.
type DonorsHandler struct {
	backend workflow.DonationBackend
	toast   workflow.Toaster
}

// NewDonorsHandler constructs handler.
func NewDonorsHandler(backend workflow.DonationBackend, toast workflow.Toaster) *DonorsHandler {
	return &DonorsHandler{backend: backend, toast: toast}
}

// Create POST /api/v1/blood-donations.
func (h *DonorsHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rec := &workflow.RecordingToaster{}
	form := workflow.NewDonationWorkflow(h.backend, workflow.Tee(rec, h.toast)).NewForm()
	form.Fields = workflow.DonationFields{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Age:               req.Age,
		BloodGroup:        req.BloodGroup,
		Weight:            req.Weight,
		LastDonationDate:  req.LastDonationDate,
		MedicalConditions: req.MedicalConditions,
	}

	donor, err := form.Submit(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":  donorResponse(donor),
		"toast": firstToast(rec),
	})
}

// List GET /api/v1/blood-donations.
func (h *DonorsHandler) List(c *fiber.Ctx) error {
	var status *domain.DonorStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.DonorStatus(raw)
		status = &s
	}

	wf := workflow.NewDonationWorkflow(h.backend, h.toast)
	records, err := wf.List(c.UserContext(), status)
	if err != nil {
		return err
	}

	items := make([]dto.DonorResponse, 0, len(records))
	for i := range records {
		items = append(items, donorResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /api/v1/blood-donations/:id/status.
func (h *DonorsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	rec := &workflow.RecordingToaster{}
	wf := workflow.NewDonationWorkflow(h.backend, workflow.Tee(rec, h.toast))
	if err := wf.SetStatus(c.UserContext(), c.Params("id"), domain.DonorStatus(req.Status)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"id": c.Params("id"), "status": req.Status},
		"toast": firstToast(rec),
	})
}

func donorResponse(donor *domain.BloodDonation) dto.DonorResponse {
	return dto.DonorResponse{
		ID:                donor.ID,
		Name:              donor.Name,
		Phone:             donor.Phone,
		Email:             donor.Email,
		Age:               donor.Age,
		BloodGroup:        donor.BloodGroup,
		Weight:            donor.Weight,
		LastDonationDate:  donor.LastDonationDate,
		MedicalConditions: donor.MedicalConditions,
		Status:            donor.Status,
		CreatedAt:         donor.CreatedAt,
		UpdatedAt:         donor.UpdatedAt,
	}
}
