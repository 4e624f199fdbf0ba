package services

import (
	"MediCareHub/models"
	"MediCareHub/role"
	"MediCareHub/utils"
)

// Capability is what the caller is trying to do with an appointment.
type Capability string

const (
	CapabilityView         Capability = "view"
	CapabilityUpdateStatus Capability = "update-status"
	CapabilityCancel       Capability = "cancel"
	CapabilityClinical     Capability = "clinical"
)

/*
* The one authorization predicate for appointment-scoped operations.
* Admin passes everything; doctors and patients pass only on ownership,
* and patients can never update status or write clinical fields.
 */
func CanAccessAppointment(callerRole role.Role, profileID int, appt *models.Appointment, capability Capability) error {
	switch callerRole {
	case role.Admin:
		return nil
	case role.Doctor:
		if appt.DoctorID != profileID {
			return utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
		}
		return nil
	case role.Patient:
		switch capability {
		case CapabilityView, CapabilityCancel:
			if appt.PatientID != profileID {
				return utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
			}
			return nil
		case CapabilityUpdateStatus:
			return utils.Forbidden(utils.PATIENT_CANNOT_UPDATE_STATUS)
		case CapabilityClinical:
			return utils.Forbidden(utils.CLINICAL_FIELDS_DOCTOR_ONLY)
		}
	}
	return utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
}
