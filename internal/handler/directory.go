package handler

import (
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler implements the user, doctor, patient and department endpoints
type DirectoryHandler struct {
	service *service.DirectoryService
	logger  *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(service *service.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		logger:  logger,
	}
}

// GetCurrentUser returns the signed-in user
func (h *DirectoryHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get current user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListDoctors(c.Request.Context()))
}

func (h *DirectoryHandler) GetDoctor(c *gin.Context, id int) {
	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get doctor")
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DirectoryHandler) ListPatients(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListPatients(c.Request.Context()))
}

func (h *DirectoryHandler) GetPatient(c *gin.Context, id int) {
	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get patient")
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *DirectoryHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListDepartments(c.Request.Context()))
}

func (h *DirectoryHandler) GetDepartment(c *gin.Context, id int) {
	department, err := h.service.GetDepartment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get department")
		return
	}
	c.JSON(http.StatusOK, department)
}
