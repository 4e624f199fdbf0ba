package services

import (
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ListPatients(c *gin.Context) ([]models.Patient, error) {
	coll := configuration.OpenCollection(utils.PatientCollection)
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	var patients []models.Patient
	if err := configuration.FindAll(c, coll, bson.M{"isActive": true}, &patients, opts); err != nil {
		log.Println("Error from FindAll: ", err)
		return nil, err
	}
	return patients, nil
}

type PatientUpdateInput struct {
	Phone                 string `json:"phone"`
	Address               string `json:"address"`
	EmergencyContact      string `json:"emergencyContact"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	MedicalHistory        string `json:"medicalHistory"`
	Allergies             string `json:"allergies"`
	BloodType             string `json:"bloodType"`
}

/*
* Patients may update their own profile; admins may update anyone's.
 */
func UpdatePatient(c *gin.Context, patientID int, input PatientUpdateInput) (*models.Patient, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role == role.Patient && identity.ProfileID != patientID {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	if _, err := FetchPatientByID(c, patientID); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if input.EmergencyContact != "" {
		set["emergencyContact"] = input.EmergencyContact
	}
	if input.EmergencyContactPhone != "" {
		set["emergencyContactPhone"] = input.EmergencyContactPhone
	}
	if input.MedicalHistory != "" {
		set["medicalHistory"] = input.MedicalHistory
	}
	if input.Allergies != "" {
		set["allergies"] = input.Allergies
	}
	if input.BloodType != "" {
		set["bloodType"] = input.BloodType
	}

	coll := configuration.OpenCollection(utils.PatientCollection)
	if _, err := configuration.UpdateOne(c, coll, bson.M{"id": patientID}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating patient: ", err)
		return nil, err
	}
	if err := configuration.DeleteCache(c, utils.PatientKey+strconv.Itoa(patientID)); err != nil {
		log.Println("Error deleting patient from cache: ", err)
	}
	return FetchPatientByID(c, patientID)
}

// Soft delete, admin only at the route level.
func DeactivatePatient(c *gin.Context, patientID int) (string, error) {
	patient, err := FetchPatientByID(c, patientID)
	if err != nil {
		return "", err
	}

	set := bson.M{"isActive": false, "updatedAt": time.Now()}
	coll := configuration.OpenCollection(utils.PatientCollection)
	if _, err := configuration.UpdateOne(c, coll, bson.M{"id": patientID}, bson.M{"$set": set}); err != nil {
		return "", err
	}
	if err := configuration.DeleteCache(c, utils.PatientKey+strconv.Itoa(patientID)); err != nil {
		log.Println("Error deleting patient from cache: ", err)
	}
	return fmt.Sprintf("Patient %s deactivated successfully", patient.Name), nil
}

type PatientDashboard struct {
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	FeedbackEligible     []models.Appointment `json:"feedbackEligible"`
	PaymentPending       []models.Appointment `json:"paymentPending"`
}

/*
* The patient's landing view: upcoming bookings, completed appointments
* that may receive feedback, and bookings awaiting payment.
 */
func FetchPatientDashboard(c *gin.Context) (*PatientDashboard, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	today := time.Now().Format(dateLayout)

	var upcoming []models.Appointment
	err = configuration.FindAll(c, coll, bson.M{
		"patientId": identity.ProfileID,
		"date":      bson.M{"$gte": today},
		"status":    bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed, models.StatusRescheduled}},
	}, &upcoming, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}))
	if err != nil {
		return nil, err
	}

	eligible, err := FeedbackEligibleAppointments(c)
	if err != nil {
		return nil, err
	}
	pendingPayment, err := PendingPaymentAppointments(c)
	if err != nil {
		return nil, err
	}

	return &PatientDashboard{
		UpcomingAppointments: upcoming,
		FeedbackEligible:     eligible,
		PaymentPending:       pendingPayment,
	}, nil
}
