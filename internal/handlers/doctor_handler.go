package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medibook/clinic-scheduler/internal/db"
	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/httpresp"
	"github.com/medibook/clinic-scheduler/internal/timezone"
)

// ======================================================
// HANDLER — DOCTOR DIRECTORY (public)
// ======================================================

type DoctorHandler struct {
	repo domain.Repository

	// one generator per request: the random draw is per render
	newGenerator func() domain.SlotGenerator
}

func NewDoctorHandler(repo domain.Repository) *DoctorHandler {
	return &DoctorHandler{
		repo: repo,
		newGenerator: func() domain.SlotGenerator {
			return domain.NewRandomSlotGenerator()
		},
	}
}

func (h *DoctorHandler) List(c *gin.Context) {
	specialty := c.Query("specialty")
	query := c.Query("query")

	doctors, err := h.repo.ListDoctors(c.Request.Context(), specialty, query)
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	doctor, err := h.repo.GetDoctorByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "doctor_not_found", "The doctor you're looking for doesn't exist.")
		return
	}

	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) Specialties(c *gin.Context) {
	httpresp.List(c, db.Specialties)
}

// Slots returns the generated candidate slots for one day. Availability
// is a fresh random assignment per call; there is no booking ledger
// behind it.
func (h *DoctorHandler) Slots(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	if _, err := h.repo.GetDoctorByID(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "doctor_not_found", "The doctor you're looking for doesn't exist.")
		return
	}

	day := timezone.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		day, err = time.ParseInLocation("2006-01-02", dateStr, timezone.Location(""))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
	}

	slots := h.newGenerator().Generate(day)

	c.JSON(http.StatusOK, gin.H{
		"date":  day.Format("2006-01-02"),
		"slots": slots,
	})
}
