package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory stand-in for the GORM repository.
type fakeRepo struct {
	doctors      map[uint]*models.Doctor
	users        map[uint]*models.User
	appointments map[string]*models.Appointment

	createErr error
	updateErr error

	monthlyCounts    []domain.MonthlyCount
	specialtyCounts  []domain.SpecialtyCount
	patientsTotal    int64
	patientsRecently int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		doctors: map[uint]*models.Doctor{
			1: {ID: 1, Name: "Dr. Sarah Mitchell", Specialty: "Cardiology"},
		},
		users: map[uint]*models.User{
			10: {ID: 10, Name: "Jane Doe", Email: "jane.doe@example.com", Role: "patient"},
		},
		appointments: map[string]*models.Appointment{},
	}
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *fakeRepo) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return d, nil
}

func (r *fakeRepo) ListDoctors(ctx context.Context, specialty, query string) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeRepo) UpdateDoctorImage(ctx context.Context, id uint, imageURL string) error {
	d, ok := r.doctors[id]
	if !ok {
		return errors.New("record not found")
	}
	d.ImageURL = imageURL
	return nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	saved := *ap
	r.appointments[ap.ID] = &saved
	return nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) GetAppointmentForPatient(ctx context.Context, id string, patientID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.PatientID != patientID {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) ListAppointmentsForPatient(ctx context.Context, patientID uint, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.PatientID != patientID {
			continue
		}
		if status != "" && ap.Status != status {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if status != "" && ap.Status != status {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	saved := *ap
	r.appointments[ap.ID] = &saved
	return nil
}

func (r *fakeRepo) CountAppointments(ctx context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *fakeRepo) CountAppointmentsByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, ap := range r.appointments {
		if ap.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) CountAppointmentsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, ap := range r.appointments {
		d, err := time.Parse("2006-01-02", ap.Date)
		if err != nil {
			continue
		}
		if !d.Before(from.Truncate(24*time.Hour)) && d.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) MonthlyAppointmentCounts(ctx context.Context, months int, now time.Time) ([]domain.MonthlyCount, error) {
	return r.monthlyCounts, nil
}

func (r *fakeRepo) AppointmentCountsBySpecialty(ctx context.Context) ([]domain.SpecialtyCount, error) {
	return r.specialtyCounts, nil
}

func (r *fakeRepo) CountPatients(ctx context.Context) (int64, error) {
	return r.patientsTotal, nil
}

func (r *fakeRepo) CountPatientsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.patientsRecently, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
