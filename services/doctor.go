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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Public doctor directory: active doctors, optionally filtered by
* specialty and a case-insensitive name search, ordered by name.
 */
func ListDoctors(c *gin.Context, specialty, search string) ([]models.Doctor, error) {
	filter := bson.M{"isActive": true}
	if specialty != "" {
		filter["specialty"] = specialty
	}
	if search != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
	}

	coll := configuration.OpenCollection(utils.DoctorCollection)
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	var doctors []models.Doctor
	if err := configuration.FindAll(c, coll, filter, &doctors, opts); err != nil {
		log.Println("Error from FindAll: ", err)
		return nil, err
	}
	return doctors, nil
}

type DoctorUpdateInput struct {
	Specialty       string   `json:"specialty"`
	Qualifications  string   `json:"qualifications"`
	LicenseNumber   string   `json:"licenseNumber"`
	ConsultationFee *float64 `json:"consultationFee"`
	ExperienceYears *int     `json:"experienceYears"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
}

/*
* Profile update. Changing the consultation fee never touches existing
* appointments; their fee snapshot was taken at booking time.
 */
func UpdateDoctor(c *gin.Context, doctorID int, input DoctorUpdateInput) (*models.Doctor, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role == role.Doctor && identity.ProfileID != doctorID {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	if _, err := FetchDoctorByID(c, doctorID); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Specialty != "" {
		set["specialty"] = input.Specialty
	}
	if input.Qualifications != "" {
		set["qualifications"] = input.Qualifications
	}
	if input.LicenseNumber != "" {
		set["licenseNumber"] = input.LicenseNumber
	}
	if input.ConsultationFee != nil {
		set["consultationFee"] = *input.ConsultationFee
	}
	if input.ExperienceYears != nil {
		set["experienceYears"] = *input.ExperienceYears
	}
	if input.Location != "" {
		set["location"] = input.Location
	}
	if input.Bio != "" {
		set["bio"] = input.Bio
	}

	coll := configuration.OpenCollection(utils.DoctorCollection)
	if _, err := configuration.UpdateOne(c, coll, bson.M{"id": doctorID}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating doctor: ", err)
		return nil, err
	}

	if err := configuration.DeleteCache(c, utils.DoctorKey+strconv.Itoa(doctorID)); err != nil {
		log.Println("Error deleting doctor from cache: ", err)
	}
	return FetchDoctorByID(c, doctorID)
}

/*
* Soft delete: the profile stays, isActive flips. The directory and the
* slot endpoints stop seeing the doctor immediately.
 */
func DeactivateDoctor(c *gin.Context, doctorID int) (string, error) {
	doctor, err := FetchDoctorByID(c, doctorID)
	if err != nil {
		return "", err
	}

	set := bson.M{"isActive": false, "updatedAt": time.Now()}
	coll := configuration.OpenCollection(utils.DoctorCollection)
	if _, err := configuration.UpdateOne(c, coll, bson.M{"id": doctorID}, bson.M{"$set": set}); err != nil {
		return "", err
	}
	if err := configuration.DeleteCache(c, utils.DoctorKey+strconv.Itoa(doctorID)); err != nil {
		log.Println("Error deleting doctor from cache: ", err)
	}
	return fmt.Sprintf("Doctor %s deactivated successfully", doctor.Name), nil
}

type DoctorDashboard struct {
	TodayAppointments   []models.Appointment `json:"todayAppointments"`
	PendingAppointments []models.Appointment `json:"pendingAppointments"`
}

/*
* The doctor's view of their day: appointments dated today plus
* everything still pending confirmation.
 */
func FetchDoctorDashboard(c *gin.Context) (*DoctorDashboard, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	today := time.Now().Format(dateLayout)

	var todays []models.Appointment
	err = configuration.FindAll(c, coll, bson.M{
		"doctorId": identity.ProfileID,
		"date":     today,
		"status":   bson.M{"$ne": models.StatusCancelled},
	}, &todays, options.Find().SetSort(bson.D{{Key: "time", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var pending []models.Appointment
	err = configuration.FindAll(c, coll, bson.M{
		"doctorId": identity.ProfileID,
		"status":   models.StatusPending,
	}, &pending, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return &DoctorDashboard{TodayAppointments: todays, PendingAppointments: pending}, nil
}
