package auth

import (
	"testing"
	"time"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/models"
)

var (
	admin    = Identity{UserID: 1, Role: RoleAdmin}
	customer = Identity{UserID: 2, Role: RoleCustomer}
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCanCreateFor(t *testing.T) {
	if err := CanCreateFor(customer, customer.UserID); err != nil {
		t.Fatalf("expected customer to book for self, got %v", err)
	}
	if err := CanCreateFor(customer, 99); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden booking for someone else, got %v", err)
	}
	if err := CanCreateFor(admin, 99); err != nil {
		t.Fatalf("expected admin to book for anyone, got %v", err)
	}
}

func TestCanTransitionOwnership(t *testing.T) {
	booking := &models.Booking{CustomerID: 99, RentStartDate: day("2026-04-01")}

	err := CanTransition(customer, booking, models.BookingCancelled, day("2026-03-01"))
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden for someone else's booking, got %v", err)
	}
	if err.Error() != "You can only update your own bookings" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if err := CanTransition(admin, booking, models.BookingCancelled, day("2026-03-01")); err != nil {
		t.Fatalf("expected admin to transition any booking, got %v", err)
	}
}

func TestCanTransitionReturnedIsAdminOnly(t *testing.T) {
	booking := &models.Booking{CustomerID: customer.UserID, RentStartDate: day("2026-04-01")}

	err := CanTransition(customer, booking, models.BookingReturned, day("2026-03-01"))
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err.Error() != "Only admins can mark bookings as returned" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if err := CanTransition(admin, booking, models.BookingReturned, day("2026-03-01")); err != nil {
		t.Fatalf("expected admin return to pass, got %v", err)
	}
}

func TestCanTransitionCancelTiming(t *testing.T) {
	booking := &models.Booking{CustomerID: customer.UserID, RentStartDate: day("2026-04-01")}

	// before the rental starts
	if err := CanTransition(customer, booking, models.BookingCancelled, day("2026-03-31")); err != nil {
		t.Fatalf("expected cancel before start to pass, got %v", err)
	}

	// on the start day
	err := CanTransition(customer, booking, models.BookingCancelled, day("2026-04-01"))
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden on start day, got %v", err)
	}
	if err.Error() != "Cannot cancel booking after start date" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	// after the start day
	if err := CanTransition(customer, booking, models.BookingCancelled, day("2026-04-05")); apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden after start, got %v", err)
	}

	// admins cancel whenever the booking is still active
	if err := CanTransition(admin, booking, models.BookingCancelled, day("2026-04-05")); err != nil {
		t.Fatalf("expected admin cancel to pass, got %v", err)
	}
}
