package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medibook/clinic-scheduler/internal/audit"
	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/models"
	"github.com/medibook/clinic-scheduler/internal/timezone"
)

// ======================================================
// USE CASE — CREATE
// ======================================================

// CreateAppointment is the persistence collaborator the booking flow
// emits to. It also serves direct API submissions, so it re-runs the
// intake validation instead of trusting the caller.
type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Appointment, error) {

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if failed := domain.Validate(in.Form); len(failed) > 0 {
		return nil, domain.ValidationError{Fields: failed}
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if in.Time == "" {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	ap := &models.Appointment{
		ID:        uuid.NewString(),
		DoctorID:  doctor.ID,
		PatientID: in.PatientID,

		FirstName:    in.Form.FirstName,
		LastName:     in.Form.LastName,
		Email:        in.Form.Email,
		Phone:        in.Form.Phone,
		DateOfBirth:  in.Form.DateOfBirth,
		Insurance:    in.Form.Insurance,
		IsNewPatient: in.Form.IsNewPatient,

		Date:   in.Date,
		Time:   in.Time,
		Reason: in.Form.Reason,

		Status:    string(domain.InitialStatus()),
		CreatedAt: timezone.Now(),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.PatientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// Compile-time check: the flow emits through this use case.
var _ domain.AppointmentCreator = (*CreateAppointment)(nil)
