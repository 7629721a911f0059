package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/middleware"
	"github.com/medibook/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/medibook/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — BOOKING SESSIONS
// ======================================================

// Each session owns one booking flow. Sessions live in memory only:
// abandoning the flow before confirmation just discards the entry,
// nothing was persisted before the submit step.
//
// The flow itself is not safe for concurrent use, so every handler
// that touches it holds the session mutex. h.mu guards only the map.
type bookingSession struct {
	patientID uint
	doctorID  uint

	mu   sync.Mutex
	flow *domain.Flow
}

type BookingSessionHandler struct {
	repo     domain.Repository
	createUC *ucAppointment.CreateAppointment

	mu       sync.Mutex
	sessions map[string]*bookingSession
}

func NewBookingSessionHandler(
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
) *BookingSessionHandler {
	return &BookingSessionHandler{
		repo:     repo,
		createUC: createUC,
		sessions: make(map[string]*bookingSession),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StartSessionRequest struct {
	DoctorID uint `json:"doctor_id" binding:"required"`
}

type SetDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

type SelectSlotRequest struct {
	SlotID int `json:"slot_id" binding:"required"`
}

type SubmitRequest struct {
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
// LIFECYCLE
// ======================================================

func (h *BookingSessionHandler) Start(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if _, err := h.repo.GetDoctorByID(c.Request.Context(), req.DoctorID); err != nil {
		httperr.NotFound(c, "doctor_not_found", "The doctor you're looking for doesn't exist.")
		return
	}

	selection := domain.NewSlotSelection(
		domain.NewRandomSlotGenerator(),
		timezone.Now(),
	)
	flow := domain.NewFlow(req.DoctorID, patientID, selection, h.createUC)

	id := uuid.NewString()

	h.mu.Lock()
	h.sessions[id] = &bookingSession{
		patientID: patientID,
		doctorID:  req.DoctorID,
		flow:      flow,
	}
	h.mu.Unlock()

	c.JSON(http.StatusCreated, h.sessionState(id, flow))
}

func (h *BookingSessionHandler) Get(c *gin.Context) {
	id, s, ok := h.session(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, h.sessionState(id, s.flow))
}

func (h *BookingSessionHandler) SetDate(c *gin.Context) {
	id, s, ok := h.session(c)
	if !ok {
		return
	}

	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(""))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flow.SetDate(date); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionState(id, s.flow))
}

func (h *BookingSessionHandler) SelectSlot(c *gin.Context) {
	id, s, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flow.SelectSlot(req.SlotID); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionState(id, s.flow))
}

func (h *BookingSessionHandler) Continue(c *gin.Context) {
	id, s, ok := h.session(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flow.ContinueToPatientInfo(); err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessionState(id, s.flow))
}

func (h *BookingSessionHandler) Submit(c *gin.Context) {
	id, s, ok := h.session(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ap, err := s.flow.Submit(c.Request.Context(), domain.FormData{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Reason:       req.Reason,
		Insurance:    req.Insurance,
		IsNewPatient: req.IsNewPatient,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	// Confirmed sessions are done; drop them.
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	c.JSON(http.StatusCreated, ap)
}

// Abandon discards the in-progress flow. There is nothing to clean up.
func (h *BookingSessionHandler) Abandon(c *gin.Context) {
	id, _, ok := h.session(c)
	if !ok {
		return
	}

	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingSessionHandler) session(c *gin.Context) (string, *bookingSession, bool) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	h.mu.Lock()
	s, ok := h.sessions[id]
	h.mu.Unlock()

	if !ok || s.patientID != patientID {
		httperr.NotFound(c, "session_not_found", "Booking session not found.")
		return "", nil, false
	}

	return id, s, true
}

func (h *BookingSessionHandler) sessionState(id string, flow *domain.Flow) gin.H {
	sel := flow.Selection()

	state := gin.H{
		"session_id": id,
		"stage":      flow.Stage(),
		"date":       sel.Date().Format("2006-01-02"),
		"slots":      sel.Slots(),
	}

	if slot := sel.Selected(); slot != nil {
		state["selected_slot"] = slot
	}

	return state
}
