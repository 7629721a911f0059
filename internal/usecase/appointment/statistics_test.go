package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/models"
)

func TestAppointmentStatistics(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "ap-1", domain.StatusPending)
	seedAppointment(repo, "ap-2", domain.StatusPending)
	seedAppointment(repo, "ap-3", domain.StatusApproved)
	seedAppointment(repo, "ap-4", domain.StatusCompleted)
	repo.monthlyCounts = []domain.MonthlyCount{
		{Month: "2026-08", Count: 3},
		{Month: "2026-09", Count: 1},
	}
	repo.specialtyCounts = []domain.SpecialtyCount{
		{Specialty: "Cardiology", Count: 4},
	}

	uc := NewStatistics(repo, nil)

	stats, err := uc.Appointments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus[string(domain.StatusPending)])
	assert.Equal(t, int64(1), stats.ByStatus[string(domain.StatusApproved)])
	assert.Equal(t, int64(0), stats.ByStatus[string(domain.StatusRejected)])
	assert.Equal(t, int64(1), stats.ByStatus[string(domain.StatusCompleted)])
	assert.Len(t, stats.MonthlyTrend, 2)
	assert.Equal(t, "Cardiology", stats.BySpecialty[0].Specialty)
}

func TestPatientStatistics(t *testing.T) {
	repo := newFakeRepo()
	repo.patientsTotal = 42
	repo.patientsRecently = 5

	uc := NewStatistics(repo, nil)

	stats, err := uc.Patients(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalPatients)
	assert.Equal(t, int64(5), stats.NewPatients)
}

func TestListPatientAppointmentsFiltersByOwnerAndStatus(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "ap-1", domain.StatusPending)
	seedAppointment(repo, "ap-2", domain.StatusApproved)
	repo.appointments["ap-3"] = &models.Appointment{
		ID: "ap-3", DoctorID: 1, PatientID: 77,
		Date: "2026-09-20", Time: "10:00 AM",
		Status: string(domain.StatusPending),
	}

	uc := NewListPatientAppointments(repo)

	all, err := uc.Execute(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := uc.Execute(context.Background(), 10, string(domain.StatusPending))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "ap-1", pending[0].ID)
}

func TestListPatientAppointmentsInvalidStatus(t *testing.T) {
	uc := NewListPatientAppointments(newFakeRepo())

	_, err := uc.Execute(context.Background(), 10, "scheduled")

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestListAppointmentsByStatus(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "ap-1", domain.StatusPending)
	seedAppointment(repo, "ap-2", domain.StatusApproved)

	uc := NewListAppointmentsByStatus(repo)

	got, err := uc.Execute(context.Background(), string(domain.StatusApproved))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ap-2", got[0].ID)

	_, err = uc.Execute(context.Background(), "nope")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
