package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	leadRepo "inspectra/database/repository/lead"
	"inspectra/models"
	leadSvc "inspectra/services/lead"
	"inspectra/utils"
)

// LeadHandler exposes lead-intake CRUD endpoints.
type LeadHandler struct {
	Service leadSvc.Service
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(service leadSvc.Service) *LeadHandler {
	return &LeadHandler{Service: service}
}

// CreateLeadHandler registers a new inquiry.
func (h *LeadHandler) CreateLeadHandler(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &lead)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create lead", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetLeadHandler returns a lead by ID.
func (h *LeadHandler) GetLeadHandler(c *gin.Context) {
	lead, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "lead not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLeadHandler merges edited fields over a stored lead.
func (h *LeadHandler) UpdateLeadHandler(c *gin.Context) {
	var patch models.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	lead, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "lead not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLeadHandler removes a lead.
func (h *LeadHandler) DeleteLeadHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "lead not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListLeadsHandler lists leads, optionally filtered by status.
func (h *LeadHandler) ListLeadsHandler(c *gin.Context) {
	leads, err := h.Service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list leads", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}
