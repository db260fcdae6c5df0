package vehiclesvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle_rental/internal/apperr"
	"vehicle_rental/internal/models"
	"vehicle_rental/internal/services/vehiclesvc"
)

type storeMock struct {
	createFn func(ctx context.Context, v *models.Vehicle) error
	listFn   func(ctx context.Context) ([]models.Vehicle, error)
	getFn    func(ctx context.Context, id uint) (*models.Vehicle, error)
	updateFn func(ctx context.Context, id uint, columns map[string]any) (*models.Vehicle, error)
	deleteFn func(ctx context.Context, id uint) (bool, error)
}

func (m *storeMock) Create(ctx context.Context, v *models.Vehicle) error { return m.createFn(ctx, v) }
func (m *storeMock) List(ctx context.Context) ([]models.Vehicle, error) { return m.listFn(ctx) }
func (m *storeMock) Get(ctx context.Context, id uint) (*models.Vehicle, error) {
	return m.getFn(ctx, id)
}
func (m *storeMock) Update(ctx context.Context, id uint, columns map[string]any) (*models.Vehicle, error) {
	return m.updateFn(ctx, id, columns)
}
func (m *storeMock) Delete(ctx context.Context, id uint) (bool, error) { return m.deleteFn(ctx, id) }

func validInput() vehiclesvc.CreateInput {
	return vehiclesvc.CreateInput{
		Name:               "Corolla",
		Category:           "car",
		RegistrationNumber: "KAA-001",
		DailyRentPrice:     100,
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := vehiclesvc.New(&storeMock{})
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*vehiclesvc.CreateInput)
		msg    string
	}{
		{"missing name", func(in *vehiclesvc.CreateInput) { in.Name = "" }, "vehicle_name, type, registration_number, and daily_rent_price are required"},
		{"missing price", func(in *vehiclesvc.CreateInput) { in.DailyRentPrice = 0 }, "vehicle_name, type, registration_number, and daily_rent_price are required"},
		{"bad category", func(in *vehiclesvc.CreateInput) { in.Category = "boat" }, "Invalid vehicle type. Allowed values: car, bike, van, SUV"},
		{"negative price", func(in *vehiclesvc.CreateInput) { in.DailyRentPrice = -10 }, "daily_rent_price must be a positive number"},
		{"bad availability", func(in *vehiclesvc.CreateInput) { in.AvailabilityStatus = "maybe" }, "Invalid availability_status. Allowed values: available, booked"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestCreate_DefaultsToAvailable(t *testing.T) {
	var created *models.Vehicle
	sm := &storeMock{
		createFn: func(ctx context.Context, v *models.Vehicle) error {
			v.ID = 3
			created = v
			return nil
		},
	}
	svc := vehiclesvc.New(sm)

	out, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(3), out.ID)
	assert.Equal(t, models.VehicleAvailable, out.AvailabilityStatus)
	assert.Equal(t, models.CategoryCar, out.Category)
}

func TestCreate_ExplicitBooked(t *testing.T) {
	sm := &storeMock{
		createFn: func(ctx context.Context, v *models.Vehicle) error { return nil },
	}
	svc := vehiclesvc.New(sm)

	in := validInput()
	in.AvailabilityStatus = "booked"
	out, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleBooked, out.AvailabilityStatus)
}

func TestCreate_DuplicateRegistration(t *testing.T) {
	sm := &storeMock{
		createFn: func(ctx context.Context, v *models.Vehicle) error {
			return apperr.Conflict("Registration number already exists")
		},
	}
	svc := vehiclesvc.New(sm)

	_, err := svc.Create(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func strptr(s string) *string   { return &s }
func f64ptr(f float64) *float64 { return &f }

func TestUpdate_NoFields(t *testing.T) {
	svc := vehiclesvc.New(&storeMock{})

	_, err := svc.Update(context.Background(), 1, vehiclesvc.UpdateInput{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "No valid fields to update", err.Error())
}

func TestUpdate_ValidatesPresentFields(t *testing.T) {
	svc := vehiclesvc.New(&storeMock{})
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, vehiclesvc.UpdateInput{Category: strptr("boat")})
	require.Error(t, err)
	assert.Equal(t, "Invalid vehicle type. Allowed values: car, bike, van, SUV", err.Error())

	_, err = svc.Update(ctx, 1, vehiclesvc.UpdateInput{DailyRentPrice: f64ptr(-5)})
	require.Error(t, err)
	assert.Equal(t, "daily_rent_price must be a positive number", err.Error())

	_, err = svc.Update(ctx, 1, vehiclesvc.UpdateInput{AvailabilityStatus: strptr("gone")})
	require.Error(t, err)
	assert.Equal(t, "Invalid availability_status. Allowed values: available, booked", err.Error())
}

func TestUpdate_BuildsColumnSet(t *testing.T) {
	var gotColumns map[string]any
	sm := &storeMock{
		updateFn: func(ctx context.Context, id uint, columns map[string]any) (*models.Vehicle, error) {
			gotColumns = columns
			return &models.Vehicle{}, nil
		},
	}
	svc := vehiclesvc.New(sm)

	_, err := svc.Update(context.Background(), 1, vehiclesvc.UpdateInput{
		Name:           strptr("Hilux"),
		DailyRentPrice: f64ptr(150),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Hilux", "daily_rent_price": 150.0}, gotColumns)
}

func TestDelete_Passthrough(t *testing.T) {
	sm := &storeMock{
		deleteFn: func(ctx context.Context, id uint) (bool, error) { return false, nil },
	}
	svc := vehiclesvc.New(sm)

	found, err := svc.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, found)

	sm.deleteFn = func(ctx context.Context, id uint) (bool, error) {
		return false, apperr.Conflict("Cannot delete vehicle with active bookings")
	}
	_, err = svc.Delete(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
