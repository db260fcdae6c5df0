// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

type VehicleCategory string

const (
	CategoryCar  VehicleCategory = "car"
	CategoryBike VehicleCategory = "bike"
	CategoryVan  VehicleCategory = "van"
	CategorySUV  VehicleCategory = "SUV"
)

// ValidCategory reports whether c is one of the supported vehicle types.
func ValidCategory(c VehicleCategory) bool {
	switch c {
	case CategoryCar, CategoryBike, CategoryVan, CategorySUV:
		return true
	}
	return false
}

type AvailabilityStatus string

const (
	VehicleAvailable AvailabilityStatus = "available"
	VehicleBooked    AvailabilityStatus = "booked"
)

func ValidAvailability(s AvailabilityStatus) bool {
	return s == VehicleAvailable || s == VehicleBooked
}

type Vehicle struct {
	gorm.Model
	Name               string             `json:"vehicle_name"`
	Category           VehicleCategory    `json:"type"`
	RegistrationNumber string             `json:"registration_number" gorm:"unique"`
	DailyRentPrice     float64            `json:"daily_rent_price"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" gorm:"default:'available'"`
}
