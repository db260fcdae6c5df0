package routes

import (
	"github.com/gin-gonic/gin"

	"vehicle_rental/internal/auth"
	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, vc *controllers.VehicleController) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.GET("", vc.List)
		vehicles.GET("/:id", vc.Get)
	}

	// Registry writes are administrative.
	admin := r.Group("/vehicles")
	admin.Use(middleware.RequireAuthWithRole(auth.RoleAdmin))
	{
		admin.POST("", vc.Create)
		admin.PUT("/:id", vc.Update)
		admin.DELETE("/:id", vc.Delete)
	}
}
