package booking

import (
	"context"
	"time"

	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/models"
)

// ===============================
// Booking Flow
// ===============================

type Stage string

const (
	StageSelectingDateTime   Stage = "selecting_date_time"
	StageEnteringPatientInfo Stage = "entering_patient_info"
	StageConfirmed           Stage = "confirmed"
)

// CreateInput is what the flow hands to the persistence collaborator.
type CreateInput struct {
	DoctorID  uint
	PatientID uint
	Date      string // YYYY-MM-DD
	Time      string // slot display string, e.g. "9:00 AM"
	Form      FormData
}

// AppointmentCreator is the external persistence collaborator. The flow
// performs exactly one call per successful submission and never retries.
type AppointmentCreator interface {
	Execute(ctx context.Context, in CreateInput) (*models.Appointment, error)
}

// Flow sequences one booking session: pick a date and slot, fill the
// intake form, confirm. There is no backward transition; abandoning the
// flow discards it.
type Flow struct {
	doctorID  uint
	patientID uint

	selection *SlotSelection
	stage     Stage
	creator   AppointmentCreator
}

func NewFlow(
	doctorID uint,
	patientID uint,
	selection *SlotSelection,
	creator AppointmentCreator,
) *Flow {
	return &Flow{
		doctorID:  doctorID,
		patientID: patientID,
		selection: selection,
		stage:     StageSelectingDateTime,
		creator:   creator,
	}
}

func (f *Flow) Stage() Stage {
	return f.stage
}

func (f *Flow) Selection() *SlotSelection {
	return f.selection
}

// SetDate and SelectSlot only make sense before the patient-info stage.

func (f *Flow) SetDate(d time.Time) error {
	if f.stage != StageSelectingDateTime {
		return httperr.ErrBusiness("invalid_stage")
	}
	f.selection.SetDate(d)
	return nil
}

func (f *Flow) SelectSlot(id int) error {
	if f.stage != StageSelectingDateTime {
		return httperr.ErrBusiness("invalid_stage")
	}
	if !f.selection.SelectSlot(id) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}

// ContinueToPatientInfo gates the first transition on a chosen slot.
// Refusal leaves the stage untouched; the caller prompts "select a time".
func (f *Flow) ContinueToPatientInfo() error {
	if f.stage != StageSelectingDateTime {
		return httperr.ErrBusiness("invalid_stage")
	}
	if f.selection.Selected() == nil {
		return httperr.ErrBusiness("slot_not_selected")
	}

	f.stage = StageEnteringPatientInfo
	return nil
}

// Submit validates the intake form and, on success, emits one pending
// appointment through the creator. A creator failure leaves the flow in
// the patient-info stage so the user may retry.
func (f *Flow) Submit(ctx context.Context, form FormData) (*models.Appointment, error) {
	if f.stage != StageEnteringPatientInfo {
		return nil, httperr.ErrBusiness("invalid_stage")
	}

	if failed := Validate(form); len(failed) > 0 {
		return nil, ValidationError{Fields: failed}
	}

	slot := f.selection.Selected()
	if slot == nil {
		// SetDate cannot run in this stage, so the slot survives from the
		// previous stage; this is a programmer-error guard, not a user path.
		return nil, httperr.ErrBusiness("slot_not_selected")
	}

	ap, err := f.creator.Execute(ctx, CreateInput{
		DoctorID:  f.doctorID,
		PatientID: f.patientID,
		Date:      f.selection.Date().Format("2006-01-02"),
		Time:      slot.Time,
		Form:      form,
	})
	if err != nil {
		return nil, err
	}

	f.stage = StageConfirmed
	return ap, nil
}
