package booking

import (
	"time"

	"github.com/medibook/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Every status mutation goes through one of these; call sites never
// assign Appointment.Status directly.

func Approve(ap *models.Appointment, now time.Time, notes string) error {
	if err := CanApprove(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusApproved)
	ap.ApprovedAt = &now
	if notes != "" {
		ap.Notes = notes
	}
	return nil
}

func Reject(ap *models.Appointment, now time.Time, notes string) error {
	if err := CanReject(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	ap.RejectedAt = &now
	if notes != "" {
		ap.Notes = notes
	}
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
