package appointment

import (
	"context"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/dto"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASE — LISTS
// ======================================================

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(
	repo domain.Repository,
) *ListPatientAppointments {
	return &ListPatientAppointments{
		repo: repo,
	}
}

func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	patientID uint,
	status string,
) ([]dto.AppointmentListDTO, error) {

	if status != "" && !domain.IsValidStatus(domain.Status(status)) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	appointments, err := uc.repo.ListAppointmentsForPatient(ctx, patientID, status)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

type ListAppointmentsByStatus struct {
	repo domain.Repository
}

func NewListAppointmentsByStatus(
	repo domain.Repository,
) *ListAppointmentsByStatus {
	return &ListAppointmentsByStatus{
		repo: repo,
	}
}

func (uc *ListAppointmentsByStatus) Execute(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	if status != "" && !domain.IsValidStatus(domain.Status(status)) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	return uc.repo.ListAppointmentsByStatus(ctx, status)
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			Time:       ap.Time,
			Status:     ap.Status,
			Reason:     ap.Reason,
			DoctorName: ap.Doctor.Name,
			Specialty:  ap.Doctor.Specialty,
			CreatedAt:  ap.CreatedAt,
		})
	}
	return out
}
