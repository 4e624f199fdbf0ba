package services

import (
	"context"
	"log"
	"time"

	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DashboardStats struct {
	TotalDoctors          int64                `json:"totalDoctors"`
	TotalPatients         int64                `json:"totalPatients"`
	TotalAppointments     int64                `json:"totalAppointments"`
	TodayAppointments     int64                `json:"todayAppointments"`
	PendingAppointments   int64                `json:"pendingAppointments"`
	CompletedAppointments int64                `json:"completedAppointments"`
	TotalRevenue          float64              `json:"totalRevenue"`
	MonthlyRevenue        float64              `json:"monthlyRevenue"`
	RecentAppointments    []models.Appointment `json:"recentAppointments"`
}

/*
* Admin dashboard counters plus revenue sums over completed payments.
 */
func FetchDashboardStats(c *gin.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	doctors := configuration.OpenCollection(utils.DoctorCollection)
	if stats.TotalDoctors, err = doctors.CountDocuments(c, bson.M{"isActive": true}); err != nil {
		return nil, err
	}
	patients := configuration.OpenCollection(utils.PatientCollection)
	if stats.TotalPatients, err = patients.CountDocuments(c, bson.M{"isActive": true}); err != nil {
		return nil, err
	}

	appointments := configuration.OpenCollection(utils.AppointmentCollection)
	if stats.TotalAppointments, err = appointments.CountDocuments(c, bson.M{}); err != nil {
		return nil, err
	}
	today := time.Now().Format(dateLayout)
	if stats.TodayAppointments, err = appointments.CountDocuments(c, bson.M{"date": today}); err != nil {
		return nil, err
	}
	if stats.PendingAppointments, err = appointments.CountDocuments(c, bson.M{"status": models.StatusPending}); err != nil {
		return nil, err
	}
	if stats.CompletedAppointments, err = appointments.CountDocuments(c, bson.M{"status": models.StatusCompleted}); err != nil {
		return nil, err
	}

	if stats.TotalRevenue, err = sumCompletedPayments(c, bson.M{"status": models.PaymentStatusCompleted}); err != nil {
		return nil, err
	}
	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	monthFilter := bson.M{
		"status":    models.PaymentStatusCompleted,
		"createdAt": bson.M{"$gte": monthStart},
	}
	if stats.MonthlyRevenue, err = sumCompletedPayments(c, monthFilter); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(5)
	if err := configuration.FindAll(c, appointments, bson.M{}, &stats.RecentAppointments, opts); err != nil {
		return nil, err
	}
	return stats, nil
}

func sumCompletedPayments(ctx context.Context, match bson.M) (float64, error) {
	coll := configuration.OpenCollection(utils.PaymentCollection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

type MonthlyStats struct {
	Month string `json:"month" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

type SpecialtyStats struct {
	Specialty        string `json:"specialty" bson:"_id"`
	AppointmentCount int    `json:"appointmentCount" bson:"appointmentCount"`
	DoctorCount      int    `json:"doctorCount" bson:"doctorCount"`
}

type MonthlyRevenue struct {
	Month  string  `json:"month" bson:"_id"`
	Amount float64 `json:"amount" bson:"amount"`
}

type Reports struct {
	MonthlyAppointments []MonthlyStats   `json:"monthlyAppointments"`
	SpecialtyStats      []SpecialtyStats `json:"specialtyStats"`
	RevenueStats        []MonthlyRevenue `json:"revenueStats"`
}

func FetchReports(c *gin.Context) (*Reports, error) {
	monthly, err := monthlyAppointmentStats(c)
	if err != nil {
		log.Println("Error from monthlyAppointmentStats: ", err)
		return nil, err
	}
	specialty, err := specialtyStats(c)
	if err != nil {
		log.Println("Error from specialtyStats: ", err)
		return nil, err
	}
	revenue, err := revenueStats(c)
	if err != nil {
		log.Println("Error from revenueStats: ", err)
		return nil, err
	}
	return &Reports{
		MonthlyAppointments: monthly,
		SpecialtyStats:      specialty,
		RevenueStats:        revenue,
	}, nil
}

/*
* Appointments per calendar month, oldest first, last 12 buckets. The
* month key is the "YYYY-MM" prefix of the stored date string.
 */
func monthlyAppointmentStats(ctx context.Context) ([]MonthlyStats, error) {
	coll := configuration.OpenCollection(utils.AppointmentCollection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$substrBytes": bson.A{"$date", 0, 7}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
		bson.D{{Key: "$limit", Value: 12}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []MonthlyStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

/*
* Appointment and doctor counts per specialty, joined against the doctor
* directory, busiest specialty first.
 */
func specialtyStats(ctx context.Context) ([]SpecialtyStats, error) {
	coll := configuration.OpenCollection(utils.AppointmentCollection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         utils.DoctorCollection,
			"localField":   "doctorId",
			"foreignField": "id",
			"as":           "doctor",
		}}},
		bson.D{{Key: "$unwind", Value: "$doctor"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":              "$doctor.specialty",
			"appointmentCount": bson.M{"$sum": 1},
			"doctors":          bson.M{"$addToSet": "$doctorId"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"appointmentCount": 1,
			"doctorCount":      bson.M{"$size": "$doctors"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"appointmentCount": -1}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []SpecialtyStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func revenueStats(ctx context.Context) ([]MonthlyRevenue, error) {
	coll := configuration.OpenCollection(utils.PaymentCollection)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.PaymentStatusCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
			"amount": bson.M{"$sum": "$amount"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
		bson.D{{Key: "$limit", Value: 12}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []MonthlyRevenue
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
