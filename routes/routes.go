package routes

import (
	"MediConnect/config/authorization"
	"MediConnect/config/jwt"
	"MediConnect/controllers"
	"MediConnect/services"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, svc *services.Services, signer *jwt.Signer) {
	controllers.RegisterValidators()
	h := controllers.New(svc)

	//public
	r.GET("/health", controllers.Health)
	api := r.Group("/api")
	h.Auth(api)

	//privateroutes
	private := api.Group("")
	private.Use(authorization.JWTAuth(signer))
	h.Patient(private)
	h.Doctor(private)
	h.Hospital(private)
	h.Appointment(private)
}
