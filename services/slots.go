package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"MediCareHub/configuration"
	"MediCareHub/models"
	"MediCareHub/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Booking window: 09:00 inclusive to 17:00 exclusive, 30-minute slots.
const (
	bookingWindowStart = "09:00"
	bookingWindowEnd   = "17:00"
	slotInterval       = 30 * time.Minute

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

/*
* Generate the canonical slot list for one day: 16 ascending HH:MM values.
 */
func GenerateDailySlots() []string {
	start, _ := time.Parse(timeLayout, bookingWindowStart)
	end, _ := time.Parse(timeLayout, bookingWindowEnd)

	slots := []string{}
	for t := start; t.Before(end); t = t.Add(slotInterval) {
		slots = append(slots, t.Format(timeLayout))
	}
	return slots
}

// AvailableSlots filters the canonical slots down to those not held by an
// existing booking. Pure so the conflict semantics are testable in isolation.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := []string{}
	for _, slot := range GenerateDailySlots() {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available
}

// slotTaken reports whether t is already held in the booked list.
func slotTaken(booked []string, t string) bool {
	for _, b := range booked {
		if b == t {
			return true
		}
	}
	return false
}

// pastDate compares dates in the canonical layout; lexicographic order
// matches chronological order for "2006-01-02".
func pastDate(date, today string) bool {
	return date < today
}

func IsCanonicalSlot(t string) bool {
	for _, slot := range GenerateDailySlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// NormalizeDate validates and canonicalizes a calendar date.
func NormalizeDate(s string) (string, error) {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", utils.Invalid(utils.INVALID_DATE_FORMAT)
	}
	return parsed.Format(dateLayout), nil
}

func SlotsCacheKey(doctorID int, date string) string {
	return utils.SlotsKey + strconv.Itoa(doctorID) + ":" + date
}

/*
* Collect the times held by non-cancelled appointments for a doctor on a
* date. Cancelled appointments never remove a slot.
 */
func bookedTimes(ctx context.Context, doctorID int, date string) ([]string, error) {
	coll := configuration.OpenCollection(utils.AppointmentCollection)
	var appointments []models.Appointment
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$ne": models.StatusCancelled},
	}
	if err := configuration.FindAll(ctx, coll, filter, &appointments); err != nil {
		return nil, err
	}

	times := make([]string, 0, len(appointments))
	for _, a := range appointments {
		times = append(times, a.Time)
	}
	return times, nil
}

/*
* Validate the doctor exists, then return the open slots for the date,
* cache aside. A doctor id that resolves to nothing is NotFound rather
* than a full slot list.
 */
func ListAvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := FetchDoctorByID(ctx, doctorID); err != nil {
		return nil, err
	}

	key := SlotsCacheKey(doctorID, date)
	var cached []string
	if found, err := configuration.GetCache(ctx, key, &cached); found && err == nil {
		return cached, nil
	}

	booked, err := bookedTimes(ctx, doctorID, date)
	if err != nil {
		log.Println("Error fetching booked times: ", err)
		return nil, err
	}
	available := AvailableSlots(booked)

	if err := configuration.SetCache(ctx, key, available); err != nil {
		log.Println("Error while caching slots: ", err)
	}
	return available, nil
}

// invalidateSlotCache drops the cached slot list after any write that can
// change availability for the doctor's day.
func invalidateSlotCache(ctx context.Context, doctorID int, date string) {
	if err := configuration.DeleteCache(ctx, SlotsCacheKey(doctorID, date)); err != nil {
		log.Println("Error invalidating slot cache: ", err)
	}
}
