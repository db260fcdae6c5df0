package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/middleware"
)

func BookingRoutes(r *gin.Engine, bc *controllers.BookingController) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireAuth())
	{
		bookings.POST("", bc.Create)
		bookings.GET("", bc.List)
		bookings.PUT("/:id/status", bc.UpdateStatus)
	}
}
