package routes

import (
	"MediCareHub/authentication"
	"MediCareHub/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	controllers.PublicDoctor(r)
	//privateroutes
	r.Use(authentication.JWTAuth())
	controllers.Appointment(r)
	controllers.Payment(r)
	controllers.Feedback(r)
	controllers.Doctor(r)
	controllers.Patient(r)
	controllers.Admin(r)
}
