package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingReturned  BookingStatus = "returned"
)

func ValidTargetStatus(s BookingStatus) bool {
	return s == BookingCancelled || s == BookingReturned
}

// Booking is a customer's claim on a vehicle for a date interval.
// TotalPrice is computed from the vehicle's daily price when the booking is
// created and never recomputed afterwards.
type Booking struct {
	gorm.Model
	CustomerID    uint          `json:"customer_id" gorm:"index;not null"`
	Customer      User          `json:"-" gorm:"foreignKey:CustomerID"`
	VehicleID     uint          `json:"vehicle_id" gorm:"index;not null"`
	Vehicle       Vehicle       `json:"-" gorm:"foreignKey:VehicleID"`
	RentStartDate time.Time     `json:"rent_start_date"`
	RentEndDate   time.Time     `json:"rent_end_date"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status" gorm:"default:'active'"`
}
