package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/medibook/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — STATISTICS (doctor / admin dashboards)
// ======================================================

type StatisticsHandler struct {
	statsUC *ucAppointment.Statistics
}

func NewStatisticsHandler(statsUC *ucAppointment.Statistics) *StatisticsHandler {
	return &StatisticsHandler{statsUC: statsUC}
}

func (h *StatisticsHandler) Appointments(c *gin.Context) {
	stats, err := h.statsUC.Appointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "statistics_failed", "Could not compute statistics.")
		return
	}

	httpresp.OK(c, stats)
}

func (h *StatisticsHandler) Patients(c *gin.Context) {
	stats, err := h.statsUC.Patients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "statistics_failed", "Could not compute statistics.")
		return
	}

	httpresp.OK(c, stats)
}
