// Package vehiclesvc is the vehicle registry: CRUD with field validation.
// Availability consistency is not enforced here; the booking service owns
// the availability flag at write time.
package vehiclesvc

import (
	"context"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/models"
)

// Store is the persistence capability the registry needs.
type Store interface {
	Create(ctx context.Context, v *models.Vehicle) error
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, id uint) (*models.Vehicle, error)
	Update(ctx context.Context, id uint, columns map[string]any) (*models.Vehicle, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type CreateInput struct {
	Name               string  `json:"vehicle_name"`
	Category           string  `json:"type"`
	RegistrationNumber string  `json:"registration_number"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
	AvailabilityStatus string  `json:"availability_status"`
}

// UpdateInput carries the allowed partial fields. A nil pointer means the
// field was absent from the request.
type UpdateInput struct {
	Name               *string  `json:"vehicle_name"`
	Category           *string  `json:"type"`
	RegistrationNumber *string  `json:"registration_number"`
	DailyRentPrice     *float64 `json:"daily_rent_price"`
	AvailabilityStatus *string  `json:"availability_status"`
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Vehicle, error) {
	if in.Name == "" || in.Category == "" || in.RegistrationNumber == "" || in.DailyRentPrice == 0 {
		return nil, apperr.Validation("vehicle_name, type, registration_number, and daily_rent_price are required")
	}
	if !models.ValidCategory(models.VehicleCategory(in.Category)) {
		return nil, apperr.Validation("Invalid vehicle type. Allowed values: car, bike, van, SUV")
	}
	if in.DailyRentPrice <= 0 {
		return nil, apperr.Validation("daily_rent_price must be a positive number")
	}

	availability := models.VehicleAvailable
	if in.AvailabilityStatus != "" {
		availability = models.AvailabilityStatus(in.AvailabilityStatus)
		if !models.ValidAvailability(availability) {
			return nil, apperr.Validation("Invalid availability_status. Allowed values: available, booked")
		}
	}

	v := &models.Vehicle{
		Name:               in.Name,
		Category:           models.VehicleCategory(in.Category),
		RegistrationNumber: in.RegistrationNumber,
		DailyRentPrice:     in.DailyRentPrice,
		AvailabilityStatus: availability,
	}
	if err := s.store.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.store.Get(ctx, id)
}

// Update re-validates whichever fields are present and applies them as a
// column set.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Vehicle, error) {
	columns := map[string]any{}

	if in.Name != nil {
		columns["name"] = *in.Name
	}
	if in.Category != nil {
		if !models.ValidCategory(models.VehicleCategory(*in.Category)) {
			return nil, apperr.Validation("Invalid vehicle type. Allowed values: car, bike, van, SUV")
		}
		columns["category"] = *in.Category
	}
	if in.RegistrationNumber != nil {
		columns["registration_number"] = *in.RegistrationNumber
	}
	if in.DailyRentPrice != nil {
		if *in.DailyRentPrice <= 0 {
			return nil, apperr.Validation("daily_rent_price must be a positive number")
		}
		columns["daily_rent_price"] = *in.DailyRentPrice
	}
	if in.AvailabilityStatus != nil {
		if !models.ValidAvailability(models.AvailabilityStatus(*in.AvailabilityStatus)) {
			return nil, apperr.Validation("Invalid availability_status. Allowed values: available, booked")
		}
		columns["availability_status"] = *in.AvailabilityStatus
	}

	if len(columns) == 0 {
		return nil, apperr.Validation("No valid fields to update")
	}
	return s.store.Update(ctx, id, columns)
}

// Delete reports absence as (false, nil); the conflict guard for vehicles
// with active bookings lives in the store, inside the delete transaction.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	return s.store.Delete(ctx, id)
}
