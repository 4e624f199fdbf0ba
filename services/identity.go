package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/role"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Identity is what the auth middleware established about the caller.
// ProfileID is the linked Doctor or Patient id (0 for admins).
type Identity struct {
	UserID    int
	Role      role.Role
	Email     string
	ProfileID int
}

/*
* Read the caller identity placed on the context by the jwt middleware and
* resolve the linked profile once. Every appointment-scoped operation goes
* through here, so the lookup-then-compare pattern lives in one place.
 */
func CallerIdentity(c *gin.Context) (*Identity, error) {
	userID := c.GetInt("userId")
	if userID == 0 {
		log.Println("Unable to get userId from context")
		return nil, errors.New(utils.UNABLE_TO_FETCH_IDENTITY)
	}
	callerRole, err := role.Parse(c.GetString("role"))
	if err != nil {
		log.Println("Error parsing role from context: ", err)
		return nil, err
	}

	identity := &Identity{
		UserID: userID,
		Role:   callerRole,
		Email:  c.GetString("email"),
	}

	switch callerRole {
	case role.Doctor:
		doctor, err := FetchDoctorByUserID(c, userID)
		if err != nil {
			return nil, utils.NotFound(utils.DOCTOR_PROFILE_NOT_FOUND)
		}
		identity.ProfileID = doctor.ID
	case role.Patient:
		patient, err := FetchPatientByUserID(c, userID)
		if err != nil {
			return nil, utils.NotFound(utils.PATIENT_PROFILE_NOT_FOUND)
		}
		identity.ProfileID = patient.ID
	case role.Admin:
		// admins act without a profile
	}
	return identity, nil
}

func FetchDoctorByUserID(ctx context.Context, userID int) (*models.Doctor, error) {
	coll := configuration.OpenCollection(utils.DoctorCollection)
	var doctor models.Doctor
	err := configuration.FindOne(ctx, coll, bson.M{"userId": userID, "isActive": true}, &doctor)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func FetchPatientByUserID(ctx context.Context, userID int) (*models.Patient, error) {
	coll := configuration.OpenCollection(utils.PatientCollection)
	var patient models.Patient
	err := configuration.FindOne(ctx, coll, bson.M{"userId": userID, "isActive": true}, &patient)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

/*
* Fetch a doctor by profile id, cache aside in redis.
 */
func FetchDoctorByID(ctx context.Context, doctorID int) (*models.Doctor, error) {
	key := utils.DoctorKey + strconv.Itoa(doctorID)
	var doctor models.Doctor
	if found, err := configuration.GetCache(ctx, key, &doctor); found {
		return &doctor, err
	}

	coll := configuration.OpenCollection(utils.DoctorCollection)
	err := configuration.FindOne(ctx, coll, bson.M{"id": doctorID, "isActive": true}, &doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound(utils.DOCTOR_NOT_FOUND)
		}
		return nil, err
	}
	if err := configuration.SetCache(ctx, key, doctor); err != nil {
		log.Println("Error while caching doctor: ", err)
	}
	return &doctor, nil
}

func FetchPatientByID(ctx context.Context, patientID int) (*models.Patient, error) {
	key := utils.PatientKey + strconv.Itoa(patientID)
	var patient models.Patient
	if found, err := configuration.GetCache(ctx, key, &patient); found {
		return &patient, err
	}

	coll := configuration.OpenCollection(utils.PatientCollection)
	err := configuration.FindOne(ctx, coll, bson.M{"id": patientID, "isActive": true}, &patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound(utils.PATIENT_NOT_FOUND)
		}
		return nil, err
	}
	if err := configuration.SetCache(ctx, key, patient); err != nil {
		log.Println("Error while caching patient: ", err)
	}
	return &patient, nil
}
