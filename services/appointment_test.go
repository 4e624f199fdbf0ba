package services

import (
	"errors"
	"testing"

	"MediCareHub/models"
	"MediCareHub/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusCompleted,
		models.StatusCancelled,
		models.StatusRescheduled,
	} {
		assert.True(t, ValidStatus(s), s)
	}

	assert.False(t, ValidStatus("Booked"))
	assert.False(t, ValidStatus("pending"), "status values are case sensitive")
	assert.False(t, ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCompleted, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusRescheduled, true},

		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusRescheduled, true},
		{models.StatusConfirmed, models.StatusPending, false},

		{models.StatusRescheduled, models.StatusConfirmed, true},
		{models.StatusRescheduled, models.StatusCompleted, true},
		{models.StatusRescheduled, models.StatusCancelled, true},
		{models.StatusRescheduled, models.StatusPending, false},

		// terminal states never leave
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCompleted, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusRescheduled, false},

		// self transitions are not allowed
		{models.StatusPending, models.StatusPending, false},
		{models.StatusCompleted, models.StatusCompleted, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCancellationNotes(t *testing.T) {
	assert.Equal(t, "Cancelled", CancellationNotes(""))
	assert.Equal(t, "Cancelled: patient request", CancellationNotes("patient request"))
}

/*
* Walk a booking's life through the same units insertAppointment composes:
* the booked-times list (from which cancelled appointments are excluded)
* and the slotTaken decision.
 */
func TestBookingConflictSequence(t *testing.T) {
	booked := []string{}

	// first booking of 10:00 goes through
	assert.False(t, slotTaken(booked, "10:00"))
	booked = append(booked, "10:00")

	// booking the identical slot again conflicts; neighbours stay open
	assert.True(t, slotTaken(booked, "10:00"))
	assert.False(t, slotTaken(booked, "10:30"))

	// cancelling drops the appointment from the booked list, so the
	// identical slot books again
	booked = booked[:0]
	assert.False(t, slotTaken(booked, "10:00"))
	assert.Len(t, AvailableSlots(booked), 16)
}

func TestInsertConflict(t *testing.T) {
	t.Run("duplicate key becomes the booking conflict", func(t *testing.T) {
		dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		err := insertConflict(dup)
		assert.ErrorIs(t, err, utils.ErrConflict)
		assert.Contains(t, err.Error(), utils.SLOT_ALREADY_BOOKED)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		other := errors.New("connection reset")
		assert.Equal(t, other, insertConflict(other))
		assert.NoError(t, insertConflict(nil))
	})
}

func TestNewPendingAppointment(t *testing.T) {
	appt := newPendingAppointment(1, 3, 7, "2026-09-01", "10:00", "first visit", 500)

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, models.PaymentPending, appt.PaymentStatus)
	assert.Equal(t, 500.0, appt.Fee)
	assert.Equal(t, 3, appt.DoctorID)
	assert.Equal(t, 7, appt.PatientID)
	assert.False(t, appt.CreatedAt.IsZero())
}
