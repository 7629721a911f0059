package appointment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/medibook/clinic-scheduler/internal/cache"
	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/timezone"
)

// ======================================================
// USE CASE — STATISTICS (doctor / admin dashboards)
// ======================================================

const (
	appointmentStatsKey = "stats:appointments"
	patientStatsKey     = "stats:patients"

	statsTTL    = 2 * time.Minute
	trendMonths = 6
)

// StatsCacheKeys is shared with the status-transition use case so a
// lifecycle change drops stale dashboard numbers immediately.
var StatsCacheKeys = []string{appointmentStatsKey, patientStatsKey}

type Statistics struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewStatistics(
	repo domain.Repository,
	cache *cache.Cache,
) *Statistics {
	return &Statistics{
		repo:  repo,
		cache: cache,
	}
}

func (uc *Statistics) Appointments(
	ctx context.Context,
) (*domain.AppointmentStatistics, error) {

	if raw, ok := uc.cache.Get(ctx, appointmentStatsKey); ok {
		var stats domain.AppointmentStatistics
		if err := json.Unmarshal([]byte(raw), &stats); err == nil {
			return &stats, nil
		}
	}

	total, err := uc.repo.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, 5)
	for _, st := range []domain.Status{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		count, err := uc.repo.CountAppointmentsByStatus(ctx, string(st))
		if err != nil {
			return nil, err
		}
		byStatus[string(st)] = count
	}

	now := timezone.Now()
	upcoming, err := uc.repo.CountAppointmentsBetween(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	trend, err := uc.repo.MonthlyAppointmentCounts(ctx, trendMonths, now)
	if err != nil {
		return nil, err
	}

	bySpecialty, err := uc.repo.AppointmentCountsBySpecialty(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.AppointmentStatistics{
		Total:         total,
		ByStatus:      byStatus,
		Upcoming7Days: upcoming,
		MonthlyTrend:  trend,
		BySpecialty:   bySpecialty,
	}

	uc.put(ctx, appointmentStatsKey, stats)
	return stats, nil
}

func (uc *Statistics) Patients(
	ctx context.Context,
) (*domain.PatientStatistics, error) {

	if raw, ok := uc.cache.Get(ctx, patientStatsKey); ok {
		var stats domain.PatientStatistics
		if err := json.Unmarshal([]byte(raw), &stats); err == nil {
			return &stats, nil
		}
	}

	total, err := uc.repo.CountPatients(ctx)
	if err != nil {
		return nil, err
	}

	newPatients, err := uc.repo.CountPatientsSince(ctx, timezone.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	stats := &domain.PatientStatistics{
		TotalPatients: total,
		NewPatients:   newPatients,
	}

	uc.put(ctx, patientStatsKey, stats)
	return stats, nil
}

func (uc *Statistics) put(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	uc.cache.Set(ctx, key, string(b), statsTTL)
}
