package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/models"
)

// VehicleStore persists vehicles through an injected gorm handle.
type VehicleStore struct {
	db *gorm.DB
}

func NewVehicleStore(db *gorm.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

func (s *VehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("Registration number already exists")
		}
		return err
	}
	return nil
}

func (s *VehicleStore) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleStore) Get(ctx context.Context, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vehicle not found")
		}
		return nil, err
	}
	return &v, nil
}

// Update applies the given column set and returns the updated row.
// The service layer has already validated the columns.
func (s *VehicleStore) Update(ctx context.Context, id uint, columns map[string]any) (*models.Vehicle, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(v).Updates(columns).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("Registration number already exists")
		}
		return nil, err
	}
	return v, nil
}

// Delete removes a vehicle unless an active booking still references it.
// The guard and the delete run in one transaction so a booking created
// concurrently cannot slip between them. Returns (false, nil) when the id
// does not exist.
func (s *VehicleStore) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		err := tx.Model(&models.Booking{}).
			Where("vehicle_id = ? AND status = ?", id, models.BookingActive).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return apperr.Conflict("Cannot delete vehicle with active bookings")
		}

		res := tx.Delete(&models.Vehicle{}, id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
