package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	staffRepo "inspectra/database/repository/staff"
	"inspectra/models"
	staffSvc "inspectra/services/staff"
	"inspectra/utils"
)

// StaffHandler exposes the staff directory endpoints.
type StaffHandler struct {
	Service staffSvc.Service
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(service staffSvc.Service) *StaffHandler {
	return &StaffHandler{Service: service}
}

// CreateStaffHandler registers a staff record.
func (h *StaffHandler) CreateStaffHandler(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &staff)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create staff record", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetStaffByEmailHandler resolves a staff record by email.
func (h *StaffHandler) GetStaffByEmailHandler(c *gin.Context) {
	staff, err := h.Service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "staff record not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch staff record", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

// ListStaffHandler lists active staff.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
