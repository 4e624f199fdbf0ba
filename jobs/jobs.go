package jobs

import (
	"context"
	"log"
	"time"

	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/services"
	"MediCareHub/utils"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Slot Cache Warmer...")
		WarmTodaySlotCaches()
	})

	// Runs every day at 00:15 AM
	c.AddFunc("15 0 * * *", func() {
		log.Println("Running Stale Appointment Sweeper...")
		SweepStaleAppointments()
	})

	c.Start()
}

/*
* Pre-computes today's open slots for every active doctor so the first
* booking request of the day hits redis instead of an aggregation.
 */
func WarmTodaySlotCaches() {
	today := time.Now().Format("2006-01-02")
	doctors := GetActiveDoctors()

	for _, d := range doctors {
		_, err := services.ListAvailableSlots(context.Background(), d.ID, today)
		if err != nil {
			log.Println("Error warming slot cache for doctor:", d.ID, err)
		}
	}
}

func GetActiveDoctors() []models.Doctor {
	coll := configuration.OpenCollection(utils.DoctorCollection)
	var doctors []models.Doctor
	err := configuration.FindAll(context.Background(), coll, bson.M{"isActive": true}, &doctors)
	if err != nil {
		log.Println("Error fetching active doctors:", err)
	}
	return doctors
}

/*
* Cancels Pending appointments whose date has already passed. Confirmed
* appointments are left alone so the doctor can still mark them Completed.
 */
func SweepStaleAppointments() {
	today := time.Now().Format("2006-01-02")
	coll := configuration.OpenCollection(utils.AppointmentCollection)

	filter := bson.M{
		"status": models.StatusPending,
		"date":   bson.M{"$lt": today},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.StatusCancelled,
		"notes":     services.CancellationNotes("not confirmed before the appointment date"),
		"updatedAt": time.Now(),
	}}

	result, err := coll.UpdateMany(context.Background(), filter, update)
	if err != nil {
		log.Println("Error sweeping stale appointments:", err)
		return
	}
	if result.ModifiedCount > 0 {
		log.Println("Cancelled stale pending appointments:", result.ModifiedCount)
	}
}
