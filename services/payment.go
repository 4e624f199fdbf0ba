package services

import (
	"errors"
	"log"
	"strconv"
	"time"

	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/role"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GenerateTransactionID keeps the original receipt-visible format:
// TXN + timestamp + appointment id.
func GenerateTransactionID(appointmentID int, now time.Time) string {
	return "TXN" + now.Format("20060102150405") + strconv.Itoa(appointmentID)
}

type PaymentInput struct {
	AppointmentID int     `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Description   string  `json:"description"`
}

/*
* Record a payment for one of the caller's appointments, then call back
* into the appointment lifecycle to mark it Paid. This is the only code
* path that writes Appointment.paymentStatus.
 */
func CreatePayment(c *gin.Context, input PaymentInput) (*models.Payment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role != role.Patient {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	if input.Amount <= 0 {
		return nil, utils.Invalid(utils.PAYMENT_AMOUNT_NOT_POSITIVE)
	}

	appointment, err := fetchAppointmentByID(c, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.PatientID != identity.ProfileID {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	if appointment.PaymentStatus == models.PaymentPaid {
		return nil, utils.Conflict(utils.APPOINTMENT_ALREADY_PAID)
	}

	id, err := NextSequence(c, utils.PaymentCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := models.Payment{
		ID:            id,
		AppointmentID: appointment.ID,
		PatientID:     identity.ProfileID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        models.PaymentStatusCompleted,
		TransactionID: GenerateTransactionID(appointment.ID, now),
		GatewayRef:    uuid.NewString(),
		Description:   input.Description,
		CreatedAt:     now,
		CompletedAt:   &now,
	}

	coll := configuration.OpenCollection(utils.PaymentCollection)
	if _, err := configuration.CreateOne(c, coll, payment); err != nil {
		log.Println("Error while creating payment: ", err)
		return nil, err
	}

	if err := MarkAppointmentPaid(c, appointment.ID); err != nil {
		log.Println("Error marking appointment paid: ", err)
		return nil, err
	}

	go sendPaymentReceipt(c.Copy(), payment)
	return &payment, nil
}

func FetchPayment(c *gin.Context, id int) (*models.Payment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}

	coll := configuration.OpenCollection(utils.PaymentCollection)
	var payment models.Payment
	if err := configuration.FindOne(c, coll, bson.M{"id": id}, &payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound(utils.PAYMENT_NOT_FOUND)
		}
		return nil, err
	}

	if identity.Role == role.Patient && payment.PatientID != identity.ProfileID {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	return &payment, nil
}

// FetchPayments lists payments, scoped to the caller's own for patients.
func FetchPayments(c *gin.Context) ([]models.Payment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if identity.Role == role.Patient {
		filter["patientId"] = identity.ProfileID
	}

	coll := configuration.OpenCollection(utils.PaymentCollection)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var payments []models.Payment
	if err := configuration.FindAll(c, coll, filter, &payments, opts); err != nil {
		return nil, err
	}
	return payments, nil
}

/*
* The caller's appointments still awaiting payment, used to populate the
* payment form.
 */
func PendingPaymentAppointments(c *gin.Context) ([]models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role != role.Patient {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	filter := bson.M{
		"patientId":     identity.ProfileID,
		"paymentStatus": models.PaymentPending,
		"status":        bson.M{"$ne": models.StatusCancelled},
	}
	var appointments []models.Appointment
	if err := configuration.FindAll(c, coll, filter, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

/*
* Receipt returns the PDF receipt bytes for a payment the caller may see.
 */
func Receipt(c *gin.Context, paymentID int) ([]byte, error) {
	payment, err := FetchPayment(c, paymentID)
	if err != nil {
		return nil, err
	}
	appointment, err := fetchAppointmentByID(c, payment.AppointmentID)
	if err != nil {
		return nil, err
	}
	doctor, err := FetchDoctorByID(c, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	patient, err := FetchPatientByID(c, payment.PatientID)
	if err != nil {
		return nil, err
	}
	return GenerateReceiptPDF(payment, appointment, doctor, patient)
}

func sendPaymentReceipt(c *gin.Context, payment models.Payment) {
	appointment, err := fetchAppointmentByID(c, payment.AppointmentID)
	if err != nil {
		log.Println("Error fetching appointment for receipt mail: ", err)
		return
	}
	doctor, err := FetchDoctorByID(c, appointment.DoctorID)
	if err != nil {
		log.Println("Error fetching doctor for receipt mail: ", err)
		return
	}
	patient, err := FetchPatientByID(c, payment.PatientID)
	if err != nil {
		log.Println("Error fetching patient for receipt mail: ", err)
		return
	}

	pdf, err := GenerateReceiptPDF(&payment, appointment, doctor, patient)
	if err != nil {
		log.Println("Error generating receipt PDF: ", err)
		return
	}
	body := "Hello " + patient.Name + ",\n\nYour payment was processed successfully. The receipt is attached.\n\nThank you!"
	if err := SendMail(patient.Email, "Payment receipt", body, "receipt.pdf", pdf); err != nil {
		log.Println("Receipt mail failed: ", err)
	}
}
