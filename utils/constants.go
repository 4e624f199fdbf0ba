package utils

// Collection names.
const (
	UserCollection        = "USERS"
	DoctorCollection      = "DOCTORS"
	PatientCollection     = "PATIENTS"
	AppointmentCollection = "APPOINTMENTS"
	FeedbackCollection    = "FEEDBACKS"
	PaymentCollection     = "PAYMENTS"
	CounterCollection     = "COUNTERS"
)

// Cache key prefixes.
const (
	DoctorKey      = "DOCTOR:"
	PatientKey     = "PATIENT:"
	AppointmentKey = "APPOINTMENT:"
	SlotsKey       = "SLOTS:"
)

// User-facing messages.
const (
	APPOINTMENT_NOT_FOUND         = "Appointment not found"
	DOCTOR_NOT_FOUND              = "Doctor not found"
	PATIENT_NOT_FOUND             = "Patient not found"
	PATIENT_PROFILE_NOT_FOUND     = "Patient profile not found"
	DOCTOR_PROFILE_NOT_FOUND      = "Doctor profile not found"
	USER_NOT_FOUND                = "User not found"
	PAYMENT_NOT_FOUND             = "Payment not found"
	FEEDBACK_NOT_FOUND            = "Feedback not found"
	SLOT_ALREADY_BOOKED           = "This time slot is already booked. Please choose another time."
	SLOT_NOT_IN_BOOKING_WINDOW    = "Requested time is outside the booking window"
	INVALID_DATE_FORMAT           = "Invalid date format, expected YYYY-MM-DD"
	INVALID_STATUS                = "Invalid appointment status"
	INVALID_STATUS_TRANSITION     = "Appointment status cannot change to the requested value"
	INVALID_USER_TO_ACCESS        = "This user does not have access"
	PATIENT_CANNOT_UPDATE_STATUS  = "Patients cannot update appointment status"
	INVALID_EMAIL                 = "Invalid email"
	EMAIL_ALREADY_EXISTS          = "An account with this email already exists"
	PASSWORDS_DO_NOT_MATCH        = "Passwords do not match"
	ACCOUNT_DEACTIVATED           = "Your account has been deactivated. Please contact support."
	PASSWORD_MISMATCH             = "Password mismatch"
	RATING_OUT_OF_RANGE           = "Rating must be between 1 and 5."
	FEEDBACK_REQUIRES_COMPLETED   = "Feedback can only be left for a completed appointment"
	PAYMENT_AMOUNT_NOT_POSITIVE   = "Payment amount must be greater than zero."
	APPOINTMENT_ALREADY_PAID      = "Appointment is already paid"
	DATE_IN_PAST                  = "Appointment date cannot be in the past"
	UNABLE_TO_FETCH_IDENTITY      = "Unable to fetch caller identity from context"
	CLINICAL_FIELDS_DOCTOR_ONLY   = "Clinical details can only be set by the treating doctor or an admin"
	APPOINTMENT_DATE_TIME_MISSING = "Appointment date and time are required"
)
