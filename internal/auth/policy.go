package auth

import (
	"time"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/models"
)

// Pure authorization decisions for the reservation engine. No side effects,
// so the rules are testable without a database or transport.

// CanCreateFor decides whether actor may create a booking on behalf of
// customerID. Admins may book for anyone; customers only for themselves.
func CanCreateFor(actor Identity, customerID uint) error {
	if actor.IsAdmin() || customerID == actor.UserID {
		return nil
	}
	return apperr.Forbidden("You can only create bookings for yourself")
}

// CanTransition decides whether actor may move booking to target today.
// The caller has already verified the booking is still active.
func CanTransition(actor Identity, booking *models.Booking, target models.BookingStatus, today time.Time) error {
	if !actor.IsAdmin() && booking.CustomerID != actor.UserID {
		return apperr.Forbidden("You can only update your own bookings")
	}

	if target == models.BookingReturned && !actor.IsAdmin() {
		return apperr.Forbidden("Only admins can mark bookings as returned")
	}

	if target == models.BookingCancelled && !actor.IsAdmin() {
		// Customers may walk a booking back only before the rental starts.
		day := today.Truncate(24 * time.Hour)
		if !booking.RentStartDate.After(day) {
			return apperr.Forbidden("Cannot cancel booking after start date")
		}
	}

	return nil
}
