package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/httpresp"
	"github.com/medibook/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/medibook/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — REVIEW QUEUE (doctor / admin)
// ======================================================

type AdminAppointmentHandler struct {
	listUC   *ucAppointment.ListAppointmentsByStatus
	statusUC *ucAppointment.UpdateAppointmentStatus
}

func NewAdminAppointmentHandler(
	listUC *ucAppointment.ListAppointmentsByStatus,
	statusUC *ucAppointment.UpdateAppointmentStatus,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		listUC:   listUC,
		statusUC: statusUC,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// List defaults to the pending review queue.
func (h *AdminAppointmentHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", string(domain.StatusPending))

	appointments, err := h.listUC.Execute(c.Request.Context(), status)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AdminAppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		actorID,
		id,
		domain.Status(req.Status),
		req.Notes,
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
