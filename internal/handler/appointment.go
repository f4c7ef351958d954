package handler

import (
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler implements appointment API endpoints
type AppointmentHandler struct {
	service   *service.AppointmentService
	validator BodyValidator
	logger    *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(service *service.AppointmentService, validator BodyValidator, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// ListAppointments lists appointments, optionally with patient and doctor embedded
func (h *AppointmentHandler) ListAppointments(c *gin.Context, params api.ListAppointmentsParams) {
	filter := service.AppointmentFilter{
		DoctorID:  params.DoctorId,
		PatientID: params.PatientId,
	}
	if params.Status != nil {
		status := model.AppointmentStatus(*params.Status)
		filter.Status = &status
	}

	if params.Expand != nil && *params.Expand {
		appointments, err := h.service.ListExpanded(c.Request.Context(), filter)
		if err != nil {
			respondError(c, h.logger, err, "Failed to list appointments")
			return
		}
		c.JSON(http.StatusOK, appointments)
		return
	}

	appointments, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment books an appointment
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req api.NewAppointment
	if !bindBody(c, h.validator, h.logger, api.SchemaNewAppointment, &req) {
		return
	}

	draft := model.Appointment{
		PatientID: req.PatientId,
		DoctorID:  req.DoctorId,
		Date:      dateToTime(req.Date),
		Time:      req.Time,
		Status:    model.AppointmentStatus(derefString(req.Status)),
		Condition: req.Condition,
		Notes:     req.Notes,
	}

	created, err := h.service.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create appointment")
		return
	}

	h.logger.Info("appointment booked",
		zap.Int("appointment_id", created.ID),
		zap.Int("doctor_id", created.DoctorID),
	)
	c.JSON(http.StatusCreated, created)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context, id int) {
	appointment, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get appointment")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment applies a partial update
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context, id int) {
	var req api.AppointmentUpdate
	if !bindBody(c, h.validator, h.logger, api.SchemaAppointmentUpdate, &req) {
		return
	}

	update := model.AppointmentUpdate{
		PatientID: req.PatientId,
		DoctorID:  req.DoctorId,
		Date:      datePtrToTime(req.Date),
		Time:      req.Time,
		Condition: req.Condition,
		Notes:     req.Notes,
	}
	if req.Status != nil {
		status := model.AppointmentStatus(*req.Status)
		update.Status = &status
	}

	updated, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context, id int) {
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "Failed to delete appointment")
		return
	}
	c.Status(http.StatusNoContent)
}
