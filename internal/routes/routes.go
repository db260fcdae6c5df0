package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/middleware"
)

// Controllers bundles the handler sets the router wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Vehicles *controllers.VehicleController
	Bookings *controllers.BookingController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.New()

	// Recovery first, then request id and request logging
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, c.Auth)
	VehicleRoutes(r, c.Vehicles)
	BookingRoutes(r, c.Bookings)

	return r
}
