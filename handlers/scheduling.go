package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inspectra/services/assignment"
	"inspectra/services/availability"
	"inspectra/services/session"
	"inspectra/utils"
)

// SchedulingHandler exposes the scheduling-session lifecycle and the
// availability query.
type SchedulingHandler struct {
	Sessions     session.Service
	Availability availability.Service
	Logger       *zap.Logger
}

// NewSchedulingHandler creates a SchedulingHandler.
func NewSchedulingHandler(sessions session.Service, avail availability.Service, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Sessions: sessions, Availability: avail, Logger: logger}
}

// GetAvailabilityHandler returns per-inspector availability for a date.
func (h *SchedulingHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	availability, err := h.Availability.ForDate(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "availability": availability})
}

// InitiateSessionHandler opens a scheduling session for a date.
func (h *SchedulingHandler) InitiateSessionHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Sessions.InitiateSession(c.Request.Context(), input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to initiate scheduling session", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GetSessionHandler returns the current session state.
func (h *SchedulingHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

// UpdateSessionHandler applies a date, inspector, or slot change.
func (h *SchedulingHandler) UpdateSessionHandler(c *gin.Context) {
	var update session.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Sessions.UpdateSession(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update session", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ValidateSelectionHandler validates a candidate start/end pair against the
// session's availability context. Meant to be called on every field change.
func (h *SchedulingHandler) ValidateSelectionHandler(c *gin.Context) {
	var input struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Sessions.ValidateSelection(c.Request.Context(), c.Param("sessionID"), input.Start, input.End)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to validate selection", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmAssignmentHandler runs the assignment saga for a session. Failures
// keep their already-committed effects; the response names the failed step
// and the completed steps so the caller can resume rather than restart.
func (h *SchedulingHandler) ConfirmAssignmentHandler(c *gin.Context) {
	var input session.ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Sessions.ConfirmAssignment(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondConfirmError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SchedulingHandler) respondConfirmError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		return
	}

	var rejected *session.ValidationRejectedError
	if errors.As(err, &rejected) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":    "selection rejected",
			"validation": rejected.Result,
		})
		return
	}

	var afterHours *session.AfterHoursConfirmationError
	if errors.As(err, &afterHours) {
		c.JSON(http.StatusConflict, gin.H{
			"message":                 afterHours.Message,
			"requiresAcknowledgement": true,
		})
		return
	}

	var stepErr *assignment.StepError
	if errors.As(err, &stepErr) {
		status := http.StatusUnprocessableEntity
		if stepErr.Transient {
			status = http.StatusServiceUnavailable
		}
		h.Logger.Warn("assignment saga failed",
			zap.String("failedStep", string(stepErr.Step)), zap.Error(stepErr))
		c.JSON(status, gin.H{
			"message":        stepErr.Message,
			"failedStep":     stepErr.Step,
			"completedSteps": stepErr.Completed,
			"transient":      stepErr.Transient,
		})
		return
	}

	utils.JSONError(c, http.StatusBadRequest, "failed to confirm assignment", err.Error())
}

// CancelSessionHandler discards a session. No remote state is touched.
func (h *SchedulingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
