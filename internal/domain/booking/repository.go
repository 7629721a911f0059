package booking

import (
	"context"
	"time"

	"github.com/medibook/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	ListDoctors(
		ctx context.Context,
		specialty string,
		query string,
	) ([]models.Doctor, error)

	UpdateDoctorImage(
		ctx context.Context,
		id uint,
		imageURL string,
	) error

	// -------- Appointment (create / read) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	GetAppointmentForPatient(
		ctx context.Context,
		id string,
		patientID uint,
	) (*models.Appointment, error)

	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uint,
		status string,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status string,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Statistics --------
	CountAppointments(ctx context.Context) (int64, error)

	CountAppointmentsByStatus(
		ctx context.Context,
		status string,
	) (int64, error)

	CountAppointmentsBetween(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) (int64, error)

	MonthlyAppointmentCounts(
		ctx context.Context,
		months int,
		now time.Time,
	) ([]MonthlyCount, error)

	AppointmentCountsBySpecialty(
		ctx context.Context,
	) ([]SpecialtyCount, error)

	CountPatients(ctx context.Context) (int64, error)

	CountPatientsSince(
		ctx context.Context,
		since time.Time,
	) (int64, error)
}
