package appointment

import (
	"context"

	"github.com/medibook/clinic-scheduler/internal/audit"
	"github.com/medibook/clinic-scheduler/internal/cache"
	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/models"
	"github.com/medibook/clinic-scheduler/internal/timezone"
)

// ======================================================
// USE CASE — STATUS TRANSITION (doctor / admin)
// ======================================================

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID string,
	target domain.Status,
	notes string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()

	switch target {
	case domain.StatusApproved:
		err = domain.Approve(ap, now, notes)
	case domain.StatusRejected:
		err = domain.Reject(ap, now, notes)
	case domain.StatusCompleted:
		err = domain.Complete(ap, now)
	case domain.StatusCancelled:
		err = domain.Cancel(ap, now)
	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_" + string(target),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.Invalidate(ctx, StatsCacheKeys...)

	return ap, nil
}
