package services

import (
	"errors"
	"fmt"
	"log"
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

func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

type FeedbackInput struct {
	DoctorID      int    `json:"doctorId"`
	AppointmentID int    `json:"appointmentId"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Rating        int    `json:"rating"`
}

/*
* Patients leave feedback for a completed appointment of their own.
* Feedback starts unapproved and becomes publicly visible only after a
* doctor or admin approves it.
 */
func CreateFeedback(c *gin.Context, input FeedbackInput) (*models.Feedback, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role != role.Patient {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}
	if !ValidRating(input.Rating) {
		return nil, utils.Invalid(utils.RATING_OUT_OF_RANGE)
	}

	if input.AppointmentID != 0 {
		appointment, err := fetchAppointmentByID(c, input.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment.PatientID != identity.ProfileID || appointment.Status != models.StatusCompleted {
			return nil, utils.Invalid(utils.FEEDBACK_REQUIRES_COMPLETED)
		}
	}
	if _, err := FetchDoctorByID(c, input.DoctorID); err != nil {
		return nil, err
	}

	id, err := NextSequence(c, utils.FeedbackCollection)
	if err != nil {
		return nil, err
	}
	feedback := models.Feedback{
		ID:            id,
		PatientID:     identity.ProfileID,
		DoctorID:      input.DoctorID,
		AppointmentID: input.AppointmentID,
		Title:         input.Title,
		Message:       input.Message,
		Rating:        input.Rating,
		IsApproved:    false,
		CreatedAt:     time.Now(),
	}

	coll := configuration.OpenCollection(utils.FeedbackCollection)
	if _, err := configuration.CreateOne(c, coll, feedback); err != nil {
		log.Println("Error while creating feedback: ", err)
		return nil, err
	}
	return &feedback, nil
}

// PendingFeedback lists unapproved feedback for moderation, newest first.
func PendingFeedback(c *gin.Context) ([]models.Feedback, error) {
	coll := configuration.OpenCollection(utils.FeedbackCollection)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var feedbacks []models.Feedback
	if err := configuration.FindAll(c, coll, bson.M{"isApproved": false}, &feedbacks, opts); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// ApprovedFeedbackForDoctor is the public listing.
func ApprovedFeedbackForDoctor(c *gin.Context, doctorID int) ([]models.Feedback, error) {
	coll := configuration.OpenCollection(utils.FeedbackCollection)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	filter := bson.M{"doctorId": doctorID, "isApproved": true}
	var feedbacks []models.Feedback
	if err := configuration.FindAll(c, coll, filter, &feedbacks, opts); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Feedback is never edited: it is approved or deleted.
func ApproveFeedback(c *gin.Context, id int) (string, error) {
	coll := configuration.OpenCollection(utils.FeedbackCollection)
	result, err := configuration.UpdateOne(c, coll, bson.M{"id": id}, bson.M{"$set": bson.M{"isApproved": true}})
	if err != nil {
		log.Println("Error while approving feedback: ", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", utils.NotFound(utils.FEEDBACK_NOT_FOUND)
	}
	return "Feedback approved successfully", nil
}

func DeleteFeedback(c *gin.Context, id int) (string, error) {
	coll := configuration.OpenCollection(utils.FeedbackCollection)
	var feedback models.Feedback
	if err := configuration.FindOne(c, coll, bson.M{"id": id}, &feedback); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", utils.NotFound(utils.FEEDBACK_NOT_FOUND)
		}
		return "", err
	}
	if _, err := configuration.DeleteOne(c, coll, bson.M{"id": id}); err != nil {
		log.Println("Error while deleting feedback: ", err)
		return "", err
	}
	return fmt.Sprintf("Feedback %d deleted successfully", id), nil
}

/*
* FeedbackEligibleAppointments lists the caller's completed appointments,
* the ones feedback may reference.
 */
func FeedbackEligibleAppointments(c *gin.Context) ([]models.Appointment, error) {
	identity, err := CallerIdentity(c)
	if err != nil {
		return nil, err
	}
	if identity.Role != role.Patient {
		return nil, utils.Forbidden(utils.INVALID_USER_TO_ACCESS)
	}

	coll := configuration.OpenCollection(utils.AppointmentCollection)
	filter := bson.M{
		"patientId": identity.ProfileID,
		"status":    models.StatusCompleted,
	}
	var appointments []models.Appointment
	if err := configuration.FindAll(c, coll, filter, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
