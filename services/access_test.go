package services

import (
	"testing"

	"MediCareHub/models"
	"MediCareHub/role"
	"MediCareHub/utils"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessAppointment(t *testing.T) {
	appt := &models.Appointment{ID: 10, DoctorID: 3, PatientID: 7}

	allCapabilities := []Capability{
		CapabilityView, CapabilityUpdateStatus, CapabilityCancel, CapabilityClinical,
	}

	t.Run("admin passes everything", func(t *testing.T) {
		for _, cap := range allCapabilities {
			assert.NoError(t, CanAccessAppointment(role.Admin, 99, appt, cap))
		}
	})

	t.Run("owning doctor passes everything", func(t *testing.T) {
		for _, cap := range allCapabilities {
			assert.NoError(t, CanAccessAppointment(role.Doctor, 3, appt, cap))
		}
	})

	t.Run("non-owning doctor is refused", func(t *testing.T) {
		for _, cap := range allCapabilities {
			err := CanAccessAppointment(role.Doctor, 4, appt, cap)
			assert.ErrorIs(t, err, utils.ErrForbidden)
		}
	})

	t.Run("owning patient can view and cancel", func(t *testing.T) {
		assert.NoError(t, CanAccessAppointment(role.Patient, 7, appt, CapabilityView))
		assert.NoError(t, CanAccessAppointment(role.Patient, 7, appt, CapabilityCancel))
	})

	t.Run("owning patient cannot change status or clinical fields", func(t *testing.T) {
		err := CanAccessAppointment(role.Patient, 7, appt, CapabilityUpdateStatus)
		assert.ErrorIs(t, err, utils.ErrForbidden)

		err = CanAccessAppointment(role.Patient, 7, appt, CapabilityClinical)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("non-owning patient is refused", func(t *testing.T) {
		for _, cap := range allCapabilities {
			err := CanAccessAppointment(role.Patient, 8, appt, cap)
			assert.ErrorIs(t, err, utils.ErrForbidden)
		}
	})

	t.Run("unknown role is refused", func(t *testing.T) {
		err := CanAccessAppointment(role.Role("nurse"), 3, appt, CapabilityView)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}
