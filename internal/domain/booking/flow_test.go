package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/models"
)

// fakeCreator records emissions and can be told to fail.
type fakeCreator struct {
	calls []CreateInput
	err   error
}

func (f *fakeCreator) Execute(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}

	return &models.Appointment{
		ID:       "ap-1",
		DoctorID: in.DoctorID,
		Date:     in.Date,
		Time:     in.Time,
		Status:   string(StatusPending),
	}, nil
}

func newTestFlow(creator AppointmentCreator) *Flow {
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	return NewFlow(1, 10, sel, creator)
}

func TestFlowStartsSelectingDateTime(t *testing.T) {
	f := newTestFlow(&fakeCreator{})
	assert.Equal(t, StageSelectingDateTime, f.Stage())
}

func TestContinueWithoutSlotIsRefused(t *testing.T) {
	f := newTestFlow(&fakeCreator{})

	err := f.ContinueToPatientInfo()

	assert.True(t, httperr.IsBusiness(err, "slot_not_selected"))
	assert.Equal(t, StageSelectingDateTime, f.Stage())
}

func TestSelectUnavailableSlotIsRefused(t *testing.T) {
	f := newTestFlow(&fakeCreator{})

	err := f.SelectSlot(2)

	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
	assert.Nil(t, f.Selection().Selected())
}

func TestContinueWithSlotAdvances(t *testing.T) {
	f := newTestFlow(&fakeCreator{})

	require.NoError(t, f.SelectSlot(3))
	require.NoError(t, f.ContinueToPatientInfo())

	assert.Equal(t, StageEnteringPatientInfo, f.Stage())
}

func TestSubmitBeforePatientInfoIsRefused(t *testing.T) {
	creator := &fakeCreator{}
	f := newTestFlow(creator)

	_, err := f.Submit(context.Background(), validForm())

	assert.True(t, httperr.IsBusiness(err, "invalid_stage"))
	assert.Empty(t, creator.calls)
}

func TestSubmitWithInvalidEmailStaysInPatientInfo(t *testing.T) {
	creator := &fakeCreator{}
	f := newTestFlow(creator)

	require.NoError(t, f.SelectSlot(3))
	require.NoError(t, f.ContinueToPatientInfo())

	form := validForm()
	form.Email = "abc"

	_, err := f.Submit(context.Background(), form)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"email"}, ve.Fields)

	assert.Equal(t, StageEnteringPatientInfo, f.Stage())
	assert.Empty(t, creator.calls)
}

func TestSubmitEmitsOnePendingAppointment(t *testing.T) {
	creator := &fakeCreator{}
	f := newTestFlow(creator)

	require.NoError(t, f.SelectSlot(3))
	require.NoError(t, f.ContinueToPatientInfo())

	// reason left empty on purpose: it is optional
	form := validForm()
	form.Reason = ""

	ap, err := f.Submit(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, f.Stage())

	require.Len(t, creator.calls, 1)
	assert.Equal(t, uint(1), creator.calls[0].DoctorID)
	assert.Equal(t, uint(10), creator.calls[0].PatientID)
	assert.Equal(t, "2026-09-14", creator.calls[0].Date)
	assert.Equal(t, "9:00 AM", creator.calls[0].Time)

	assert.Equal(t, "9:00 AM", ap.Time)
	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestSubmitFailureIsRetryable(t *testing.T) {
	creator := &fakeCreator{err: errors.New("connection refused")}
	f := newTestFlow(creator)

	require.NoError(t, f.SelectSlot(1))
	require.NoError(t, f.ContinueToPatientInfo())

	_, err := f.Submit(context.Background(), validForm())
	require.Error(t, err)
	assert.Equal(t, StageEnteringPatientInfo, f.Stage())

	// user retries after the collaborator recovers
	creator.err = nil

	ap, err := f.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, f.Stage())
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Len(t, creator.calls, 2)
}

func TestNoBackwardTransitions(t *testing.T) {
	f := newTestFlow(&fakeCreator{})

	require.NoError(t, f.SelectSlot(1))
	require.NoError(t, f.ContinueToPatientInfo())

	assert.True(t, httperr.IsBusiness(f.SetDate(time.Now()), "invalid_stage"))
	assert.True(t, httperr.IsBusiness(f.SelectSlot(3), "invalid_stage"))
	assert.True(t, httperr.IsBusiness(f.ContinueToPatientInfo(), "invalid_stage"))
}

func TestDateChangeClearsSlotBeforeAdvancing(t *testing.T) {
	f := newTestFlow(&fakeCreator{})

	require.NoError(t, f.SelectSlot(3))
	require.NoError(t, f.SetDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))

	err := f.ContinueToPatientInfo()
	assert.True(t, httperr.IsBusiness(err, "slot_not_selected"))
	assert.Equal(t, StageSelectingDateTime, f.Stage())
}
