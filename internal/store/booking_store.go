package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/models"
)

// AdminBookingRow is the listing projection for administrators: every
// booking joined with its customer and vehicle summaries.
type AdminBookingRow struct {
	ID                 uint                 `json:"id"`
	CustomerID         uint                 `json:"customer_id"`
	VehicleID          uint                 `json:"vehicle_id"`
	RentStartDate      time.Time            `json:"rent_start_date"`
	RentEndDate        time.Time            `json:"rent_end_date"`
	TotalPrice         float64              `json:"total_price"`
	Status             models.BookingStatus `json:"status"`
	CreatedAt          time.Time            `json:"created_at"`
	CustomerName       string               `json:"customer_name"`
	CustomerEmail      string               `json:"customer_email"`
	VehicleName        string               `json:"vehicle_name"`
	RegistrationNumber string               `json:"registration_number"`
}

// CustomerBookingRow is the listing projection for a customer's own
// bookings. No customer identity fields are exposed here.
type CustomerBookingRow struct {
	ID                 uint                   `json:"id"`
	VehicleID          uint                   `json:"vehicle_id"`
	RentStartDate      time.Time              `json:"rent_start_date"`
	RentEndDate        time.Time              `json:"rent_end_date"`
	TotalPrice         float64                `json:"total_price"`
	Status             models.BookingStatus   `json:"status"`
	CreatedAt          time.Time              `json:"created_at"`
	VehicleName        string                 `json:"vehicle_name"`
	RegistrationNumber string                 `json:"registration_number"`
	Category           models.VehicleCategory `json:"type"`
}

// BookingStore persists bookings and owns every multi-statement write that
// touches both the bookings and vehicles tables.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

// lockForUpdate takes a row lock where the dialect supports it. Postgres
// serializes same-vehicle transactions on the lock; the sqlite test store
// runs single-connection, so transactions serialize there anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Create inserts b and flips its vehicle to booked in one transaction.
// The vehicle row is re-read under FOR UPDATE so two concurrent creations
// against the same vehicle serialize; the second sees booked and fails.
func (s *BookingStore) Create(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v models.Vehicle
		err := lockForUpdate(tx).First(&v, b.VehicleID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Vehicle not found")
			}
			return err
		}
		if v.AvailabilityStatus != models.VehicleAvailable {
			return apperr.Conflict("Vehicle is not available")
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return tx.Model(&models.Vehicle{}).Where("id = ?", v.ID).
			Update("availability_status", models.VehicleBooked).Error
	})
}

func (s *BookingStore) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Booking not found")
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus moves an active booking to status and releases its vehicle,
// both in one transaction. The active check is repeated under FOR UPDATE so
// a concurrent transition or sweep cannot double-apply.
func (s *BookingStore) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	var b models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).First(&b, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Booking not found")
			}
			return err
		}
		if b.Status != models.BookingActive {
			return apperr.Conflictf("Cannot update booking with status: %s", b.Status)
		}

		if err := tx.Model(&b).Update("status", status).Error; err != nil {
			return err
		}
		return tx.Model(&models.Vehicle{}).Where("id = ?", b.VehicleID).
			Update("availability_status", models.VehicleAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookingStore) ListAdminRows(ctx context.Context) ([]AdminBookingRow, error) {
	var rows []AdminBookingRow
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select(`bookings.id, bookings.customer_id, bookings.vehicle_id,
			bookings.rent_start_date, bookings.rent_end_date,
			bookings.total_price, bookings.status, bookings.created_at,
			users.name AS customer_name, users.email AS customer_email,
			vehicles.name AS vehicle_name, vehicles.registration_number`).
		Joins("JOIN users ON users.id = bookings.customer_id").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Order("bookings.created_at DESC, bookings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *BookingStore) ListCustomerRows(ctx context.Context, customerID uint) ([]CustomerBookingRow, error) {
	var rows []CustomerBookingRow
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select(`bookings.id, bookings.vehicle_id, bookings.rent_start_date,
			bookings.rent_end_date, bookings.total_price, bookings.status,
			bookings.created_at, vehicles.name AS vehicle_name,
			vehicles.registration_number, vehicles.category`).
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("bookings.customer_id = ?", customerID).
		Order("bookings.created_at DESC, bookings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReleaseExpired closes out every active booking whose end date is before
// today and frees the affected vehicles, all in one transaction. Running it
// with no qualifying rows is a no-op, so repeated sweeps are safe.
func (s *BookingStore) ReleaseExpired(ctx context.Context, today time.Time) (int64, error) {
	var released int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expired []models.Booking
		err := lockForUpdate(tx).
			Where("status = ? AND rent_end_date < ?", models.BookingActive, today).
			Find(&expired).Error
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}

		bookingIDs := make([]uint, 0, len(expired))
		vehicleIDs := make([]uint, 0, len(expired))
		for _, b := range expired {
			bookingIDs = append(bookingIDs, b.ID)
			vehicleIDs = append(vehicleIDs, b.VehicleID)
		}

		err = tx.Model(&models.Booking{}).Where("id IN ?", bookingIDs).
			Update("status", models.BookingReturned).Error
		if err != nil {
			return err
		}
		err = tx.Model(&models.Vehicle{}).Where("id IN ?", vehicleIDs).
			Update("availability_status", models.VehicleAvailable).Error
		if err != nil {
			return err
		}

		released = int64(len(expired))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}
