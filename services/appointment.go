package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/role"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// statusTransitions is the appointment state machine. Completed and
// Cancelled have no outgoing transitions; cancellation goes through
// CancelAppointment, which is allowed from every non-terminal state.
var statusTransitions = map[string][]string{
	models.StatusPending:     {models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled, models.StatusRescheduled},
	models.StatusConfirmed:   {models.StatusCompleted, models.StatusCancelled, models.StatusRescheduled},
	models.StatusRescheduled: {models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:   {},
	models.StatusCancelled:   {},
}

func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CancellationNotes builds the note text recorded on cancel.
func CancellationNotes(reason string) string {
	if reason == "" {
		return "Cancelled"
	}
	return "Cancelled: " + reason
}

/*
* A freshly booked appointment always starts Pending with payment Pending
* and the doctor's consultation fee snapshotted at booking time; later fee
* changes never reach existing appointments.
 */
func newPendingAppointment(id, doctorID, patientID int, date, timeGiven, notes string, fee float64) models.Appointment {
	return models.Appointment{
		ID:            id,
		DoctorID:      doctorID,
		PatientID:     patientID,
		Date:          date,
		Time:          timeGiven,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		Fee:           fee,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}
}

// insertConflict maps a unique-index violation onto the same conflict the
// pre-check reports, so two concurrent bookings fail identically.
func insertConflict(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return utils.Conflict(utils.SLOT_ALREADY_BOOKED)
	}
	return err
}

type BookingInput struct {
	DoctorID int    `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes"`
}

type ManualAppointmentInput struct {
	DoctorID  int    `json:"doctorId"`
	PatientID int    `json:"patientId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

/*
* Shared insert path for self-service booking and manual creation:
* verify doctor and patient, validate the slot, pre-check for a conflict,
* then insert. The partial unique index is the backstop for the race the
* pre-check alone cannot close, so a duplicate-key error is surfaced as
* the same conflict.
 */
func insertAppointment(ctx context.Context, doctorID, patientID int, date, timeGiven, notes string) (*models.Appointment, error) {
	if date == "" || timeGiven == "" {
		return nil, utils.Invalid(utils.APPOINTMENT_DATE_TIME_MISSING)
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	if pastDate(date, time.Now().Format(dateLayout)) {
		return nil, utils.Invalid(utils.DATE_IN_PAST)
	}
	if !IsCanonicalSlot(timeGiven) {
		return nil, utils.Invalid(utils.SLOT_NOT_IN_BOOKING_WINDOW)
	}

	doctor, err := FetchDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if _, err := FetchPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	booked, err := bookedTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if slotTaken(booked, timeGiven) {
		return nil, utils.Conflict(utils.SLOT_ALREADY_BOOKED)
	}

	id, err := NextSequence(ctx, utils.AppointmentCollection)
	if err != nil {
		log.Println("Error from NextSequence: ", err)
		return nil, err
	}

	appointment := newPendingAppointment(id, doctorID, patientID, date, timeGiven, notes, doctor.ConsultationFee)

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	if _, err := configuration.CreateOne(ctx, coll, appointment); err != nil {
		if conflict := insertConflict(err); errors.Is(conflict, utils.ErrConflict) {
			return nil, conflict
		}
		log.Println("Error while creating appointment: ", err)
		return nil, err
	}

	invalidateSlotCache(ctx, doctorID, date)
	if err := configuration.SetCache(ctx, utils.AppointmentKey+strconv.Itoa(id), appointment); err != nil {
		log.Println("Error while caching new appointment: ", err)
	}
	return &appointment, nil
}

/*
* Patient self-service booking. The patient id always comes from the
* authenticated identity, never from the request body.
 */
func BookAppointment(c *gin.Context, input BookingInput) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role != role.Patient {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}

	appointment, err := insertAppointment(c, input.DoctorID, identity.ProfileID, input.Date, input.Time, input.Notes)
	if err != nil {
		return nil, err
	}

	go sendBookingConfirmation(appointment)
	return appointment, nil
}

// Manual creation by admin or doctor with an explicit patient id.
func CreateAppointment(c *gin.Context, input ManualAppointmentInput) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role == role.Patient {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	return insertAppointment(c, input.DoctorID, input.PatientID, input.Date, input.Time, input.Notes)
}

func fetchAppointmentByID(ctx context.Context, id int) (*models.Appointment, error) {
	key := utils.AppointmentKey + strconv.Itoa(id)
	var appointment models.Appointment
	if found, err := configuration.GetCache(ctx, key, &appointment); found && err == nil {
		return &appointment, nil
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	err := configuration.FindOne(ctx, coll, bson.M{"id": id}, &appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound(utils.APPOINTMENT_NOT_FOUND)
		}
		return nil, err
	}
	return &appointment, nil
}

/*
* Fetch one appointment, access-checked against the caller.
 */
func FetchAppointment(c *gin.Context, id int) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	appointment, err := fetchAppointmentByID(c, id)
	if err != nil {
		return nil, err
	}
	if err := CanAccessAppointment(identity.Role, identity.ProfileID, appointment, CapabilityView); err != nil {
		return nil, err
	}
	return appointment, nil
}

/*
* List appointments scoped to the caller: admins see everything, doctors
* and patients only their own. Newest first by date then time.
 */
func FetchAllAppointments(c *gin.Context) ([]models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	switch identity.Role {
	case role.Doctor:
		filter["doctorId"] = identity.ProfileID
	case role.Patient:
		filter["patientId"] = identity.ProfileID
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	var appointments []models.Appointment
	if err := configuration.FindAll(c, coll, filter, &appointments, opts); err != nil {
		log.Println("Error from FindAll: ", err)
		return nil, err
	}
	return appointments, nil
}

func applyAppointmentUpdate(ctx context.Context, id int, set bson.M) (*models.Appointment, error) {
	set["updatedAt"] = time.Now()
	coll := configuration.OpenCollection(utils.AppointmentCollection)
	if _, err := configuration.UpdateOne(ctx, coll, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating appointment: ", err)
		return nil, err
	}

	var updated models.Appointment
	if err := configuration.FindOne(ctx, coll, bson.M{"id": id}, &updated); err != nil {
		return nil, err
	}

	key := utils.AppointmentKey + strconv.Itoa(id)
	if err := configuration.DeleteCache(ctx, key); err != nil {
		log.Println("Error deleting appointment from cache: ", err)
	}
	if err := configuration.SetCache(ctx, key, updated); err != nil {
		log.Println("Error caching updated appointment: ", err)
	}
	return &updated, nil
}

/*
* Status transition. Admin may move any appointment, a doctor only their
* own, a patient never. The transition table rejects moves out of the
* terminal states.
 */
func UpdateAppointmentStatus(c *gin.Context, id int, newStatus, notes string) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if !ValidStatus(newStatus) {
		return nil, utils.Invalid(utils.INVALID_STATUS)
	}

	appointment, err := fetchAppointmentByID(c, id)
	if err != nil {
		return nil, err
	}
	if err := CanAccessAppointment(identity.Role, identity.ProfileID, appointment, CapabilityUpdateStatus); err != nil {
		return nil, err
	}
	if !CanTransition(appointment.Status, newStatus) {
		return nil, utils.Invalid(utils.INVALID_STATUS_TRANSITION)
	}

	set := bson.M{"status": newStatus}
	if notes != "" {
		set["notes"] = notes
	}
	updated, err := applyAppointmentUpdate(c, id, set)
	if err != nil {
		return nil, err
	}
	invalidateSlotCache(c, updated.DoctorID, updated.Date)
	return updated, nil
}

/*
* Cancel. Allowed for the owning patient, the owning doctor, or an admin.
* Cancelling an already-cancelled appointment succeeds again with the
* same effect. Notes become exactly "Cancelled" or "Cancelled: <reason>";
* diagnosis and prescription are never touched here.
 */
func CancelAppointment(c *gin.Context, id int, reason string) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	appointment, err := fetchAppointmentByID(c, id)
	if err != nil {
		return nil, err
	}
	if err := CanAccessAppointment(identity.Role, identity.ProfileID, appointment, CapabilityCancel); err != nil {
		return nil, err
	}

	updated, err := applyAppointmentUpdate(c, id, bson.M{
		"status": models.StatusCancelled,
		"notes":  CancellationNotes(reason),
	})
	if err != nil {
		return nil, err
	}
	invalidateSlotCache(c, updated.DoctorID, updated.Date)
	return updated, nil
}

/*
* Reschedule to a new date/time. The new slot must not conflict with any
* other non-cancelled appointment of the doctor.
 */
func RescheduleAppointment(c *gin.Context, id int, newDate, newTime string) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	appointment, err := fetchAppointmentByID(c, id)
	if err != nil {
		return nil, err
	}
	if err := CanAccessAppointment(identity.Role, identity.ProfileID, appointment, CapabilityUpdateStatus); err != nil {
		return nil, err
	}
	if !CanTransition(appointment.Status, models.StatusRescheduled) {
		return nil, utils.Invalid(utils.INVALID_STATUS_TRANSITION)
	}

	newDate, err = NormalizeDate(newDate)
	if err != nil {
		return nil, err
	}
	if !IsCanonicalSlot(newTime) {
		return nil, utils.Invalid(utils.SLOT_NOT_IN_BOOKING_WINDOW)
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	conflictFilter := bson.M{
		"id":       bson.M{"$ne": id},
		"doctorId": appointment.DoctorID,
		"date":     newDate,
		"time":     newTime,
		"status":   bson.M{"$ne": models.StatusCancelled},
	}
	count, err := coll.CountDocuments(c, conflictFilter)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.Conflict(utils.SLOT_ALREADY_BOOKED)
	}

	oldDate := appointment.Date
	updated, err := applyAppointmentUpdate(c, id, bson.M{
		"date":   newDate,
		"time":   newTime,
		"status": models.StatusRescheduled,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Conflict(utils.SLOT_ALREADY_BOOKED)
		}
		return nil, err
	}
	invalidateSlotCache(c, appointment.DoctorID, oldDate)
	invalidateSlotCache(c, appointment.DoctorID, newDate)
	return updated, nil
}

type ClinicalInput struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// Clinical fields are writable only by the treating doctor or an admin.
func UpdateClinicalDetails(c *gin.Context, id int, input ClinicalInput) (*models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	appointment, err := fetchAppointmentByID(c, id)
	if err != nil {
		return nil, err
	}
	if err := CanAccessAppointment(identity.Role, identity.ProfileID, appointment, CapabilityClinical); err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Diagnosis != "" {
		set["diagnosis"] = input.Diagnosis
	}
	if input.Prescription != "" {
		set["prescription"] = input.Prescription
	}
	if input.Notes != "" {
		set["notes"] = input.Notes
	}
	return applyAppointmentUpdate(c, id, set)
}

/*
* Hard delete, admin only. Everything else in the lifecycle keeps rows
* and flips status.
 */
func DeleteAppointment(c *gin.Context, id int) (string, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return "", err
	}
	if identity.Role != role.Admin {
		return "", utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}

	appointment, err := fetchAppointmentByID(c, id)
	if err != nil {
		return "", err
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	if _, err := configuration.DeleteOne(c, coll, bson.M{"id": id}); err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if err := configuration.DeleteCache(c, utils.AppointmentKey+strconv.Itoa(id)); err != nil {
		log.Println("Error from DeleteCache: ", err)
	}
	invalidateSlotCache(c, appointment.DoctorID, appointment.Date)
	return fmt.Sprintf("Appointment %d deleted successfully", id), nil
}

/*
* MarkAppointmentPaid is the callback used by the payment service; it is
* the only writer of paymentStatus.
 */
func MarkAppointmentPaid(ctx context.Context, id int) error {
	_, err := applyAppointmentUpdate(ctx, id, bson.M{"paymentStatus": models.PaymentPaid})
	return err
}

func sendBookingConfirmation(appointment *models.Appointment) {
	patient, err := FetchPatientByID(context.Background(), appointment.PatientID)
	if err != nil {
		log.Println("Error fetching patient for confirmation mail: ", err)
		return
	}
	doctor, err := FetchDoctorByID(context.Background(), appointment.DoctorID)
	if err != nil {
		log.Println("Error fetching doctor for confirmation mail: ", err)
		return
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment with Dr. %s on %s at %s has been booked and is pending confirmation.\nConsultation fee: %.2f\n\nThank you!",
		patient.Name, doctor.Name, appointment.Date, appointment.Time, appointment.Fee,
	)
	if err := SendMail(patient.Email, "Appointment booked", body, "", nil); err != nil {
		log.Println("Booking confirmation mail failed: ", err)
	}
}
