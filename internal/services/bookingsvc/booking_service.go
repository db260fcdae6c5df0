// Package bookingsvc is the reservation engine: it validates and prices
// bookings, applies the authorization policy, and drives the atomic state
// transitions through the booking store.
package bookingsvc

import (
	"context"
	"math"
	"time"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/auth"
	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

const dateLayout = "2006-01-02"

// Store is the persistence capability the engine needs. Every mutating
// method is atomic: the booking write and the vehicle availability flip
// commit together or not at all.
type Store interface {
	Create(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id uint) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error)
	ListAdminRows(ctx context.Context) ([]store.AdminBookingRow, error)
	ListCustomerRows(ctx context.Context, customerID uint) ([]store.CustomerBookingRow, error)
	ReleaseExpired(ctx context.Context, today time.Time) (int64, error)
}

// VehicleGetter resolves vehicles for price and availability checks.
type VehicleGetter interface {
	Get(ctx context.Context, id uint) (*models.Vehicle, error)
}

type CreateInput struct {
	CustomerID    uint   `json:"customer_id"`
	VehicleID     uint   `json:"vehicle_id"`
	RentStartDate string `json:"rent_start_date"`
	RentEndDate   string `json:"rent_end_date"`
}

// VehicleSummary is the read-side projection attached to a freshly created
// booking. It is assembled for the response and never persisted.
type VehicleSummary struct {
	VehicleName    string  `json:"vehicle_name"`
	DailyRentPrice float64 `json:"daily_rent_price"`
}

type CreatedBooking struct {
	models.Booking
	Vehicle VehicleSummary `json:"vehicle"`
}

type VehicleAvailability struct {
	AvailabilityStatus models.AvailabilityStatus `json:"availability_status"`
}

// UpdatedBooking reports a status transition. Vehicle is populated only for
// returns, to surface that the vehicle is rentable again.
type UpdatedBooking struct {
	models.Booking
	Vehicle *VehicleAvailability `json:"vehicle,omitempty"`
}

type Service struct {
	store    Store
	vehicles VehicleGetter

	// now is swapped out in tests for a fixed clock.
	now func() time.Time
}

func New(s Store, vehicles VehicleGetter) *Service {
	return &Service{store: s, vehicles: vehicles, now: time.Now}
}

// Create validates and prices a new booking for actor. Customers may only
// book for themselves; admins may name any customer (CustomerID zero means
// the actor books for themselves).
func (s *Service) Create(ctx context.Context, actor auth.Identity, in CreateInput) (*CreatedBooking, error) {
	if in.VehicleID == 0 || in.RentStartDate == "" || in.RentEndDate == "" {
		return nil, apperr.Validation("vehicle_id, rent_start_date, and rent_end_date are required")
	}

	start, err := time.Parse(dateLayout, in.RentStartDate)
	if err != nil {
		return nil, apperr.Validation("Invalid date format")
	}
	end, err := time.Parse(dateLayout, in.RentEndDate)
	if err != nil {
		return nil, apperr.Validation("Invalid date format")
	}
	if !end.After(start) {
		return nil, apperr.Validation("rent_end_date must be after rent_start_date")
	}
	if start.Before(s.today()) {
		return nil, apperr.Validation("rent_start_date cannot be in the past")
	}

	customerID := in.CustomerID
	if customerID == 0 {
		customerID = actor.UserID
	}
	if err := auth.CanCreateFor(actor, customerID); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.Get(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.AvailabilityStatus != models.VehicleAvailable {
		return nil, apperr.Conflict("Vehicle is not available")
	}

	days := rentalDays(start, end)
	total := float64(days) * vehicle.DailyRentPrice
	if total <= 0 {
		// Unreachable while the date and price checks above hold.
		return nil, apperr.Validation("Total price must be positive")
	}

	booking := &models.Booking{
		CustomerID:    customerID,
		VehicleID:     in.VehicleID,
		RentStartDate: start,
		RentEndDate:   end,
		TotalPrice:    total,
		Status:        models.BookingActive,
	}
	if err := s.store.Create(ctx, booking); err != nil {
		return nil, err
	}

	return &CreatedBooking{
		Booking: *booking,
		Vehicle: VehicleSummary{
			VehicleName:    vehicle.Name,
			DailyRentPrice: vehicle.DailyRentPrice,
		},
	}, nil
}

// ListForRole sweeps expired bookings first, then returns every booking
// with customer and vehicle summaries for admins, or the actor's own
// bookings with vehicle summaries for customers.
func (s *Service) ListForRole(ctx context.Context, actor auth.Identity) (any, error) {
	if _, err := s.store.ReleaseExpired(ctx, s.today()); err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return s.store.ListAdminRows(ctx)
	}
	return s.store.ListCustomerRows(ctx, actor.UserID)
}

// UpdateStatus transitions an active booking to cancelled or returned and
// releases its vehicle.
func (s *Service) UpdateStatus(ctx context.Context, actor auth.Identity, id uint, target models.BookingStatus) (*UpdatedBooking, error) {
	if target == "" {
		return nil, apperr.Validation("Status is required")
	}
	if !models.ValidTargetStatus(target) {
		return nil, apperr.Validation("Invalid status. Allowed values: cancelled, returned")
	}

	booking, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingActive {
		return nil, apperr.Conflictf("Cannot update booking with status: %s", booking.Status)
	}
	if err := auth.CanTransition(actor, booking, target, s.today()); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	out := &UpdatedBooking{Booking: *updated}
	if target == models.BookingReturned {
		out.Vehicle = &VehicleAvailability{AvailabilityStatus: models.VehicleAvailable}
	}
	return out, nil
}

// Sweep closes out every active booking whose end date has passed and
// frees the affected vehicles. Reads call this through ListForRole; it is
// exposed for operational use as well.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	return s.store.ReleaseExpired(ctx, s.today())
}

// today is the current day at midnight UTC; booking dates are parsed as
// bare dates, so comparisons stay at day granularity.
func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// rentalDays is the ceiling of the interval in whole days. Anything under
// 24 hours counts as one day.
func rentalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
