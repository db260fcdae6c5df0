package main

import (
	"log"
	"net/http"

	"vehicle_rental/internal/config"
	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/logger"
	"vehicle_rental/internal/middleware"
	"vehicle_rental/internal/routes"
	"vehicle_rental/internal/services/bookingsvc"
	"vehicle_rental/internal/services/vehiclesvc"
	"vehicle_rental/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db, err := config.OpenDB()
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Stores
	users := store.NewUserStore(db)
	vehicles := store.NewVehicleStore(db)
	bookings := store.NewBookingStore(db)

	// Services
	vehicleSvc := vehiclesvc.New(vehicles)
	bookingSvc := bookingsvc.New(bookings, vehicles)

	// Router
	r := routes.SetupRouter(routes.Controllers{
		Auth:     &controllers.AuthController{Users: users},
		Vehicles: &controllers.VehicleController{Svc: vehicleSvc},
		Bookings: &controllers.BookingController{Svc: bookingSvc},
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.Port()
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
