package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/httpresp"
	"github.com/medibook/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/medibook/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — PATIENT APPOINTMENTS
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	cancelUC *ucAppointment.CancelAppointment
	listUC   *ucAppointment.ListPatientAppointments
	repo     domain.Repository
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListPatientAppointments,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // e.g. "9:00 AM"

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"date_of_birth"`
	Reason       string `json:"reason"`
	Insurance    string `json:"insurance"`
	IsNewPatient bool   `json:"is_new_patient"`
}

// ======================================================
// CREATE (direct submission, bypassing a server-side session)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), domain.CreateInput{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Form: domain.FormData{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phone:        req.Phone,
			DateOfBirth:  req.DateOfBirth,
			Reason:       req.Reason,
			Insurance:    req.Insurance,
			IsNewPatient: req.IsNewPatient,
		},
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)
	status := c.Query("status")

	appointments, err := h.listUC.Execute(c.Request.Context(), patientID, status)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	ap, err := h.repo.GetAppointmentForPatient(c.Request.Context(), id, patientID)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), patientID, id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
