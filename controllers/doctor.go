package controllers

import (
	"net/http"
	"strconv"

	"MediCareHub/authentication"
	"MediCareHub/role"
	"MediCareHub/services"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
)

func Doctor(c *gin.Engine) {
	doctor := c.Group("doctor")
	{
		doctor.GET("/dashboard", authentication.RequireRoles(role.Doctor), FetchDoctorDashboard)
		doctor.PATCH("/update/:doctorId", authentication.RequireRoles(role.Admin, role.Doctor), UpdateDoctor)
		doctor.DELETE("/delete/:doctorId", authentication.RequireRoles(role.Admin), DeactivateDoctor)
	}
}

// Public directory endpoints, no token required.
func PublicDoctor(c *gin.Engine) {
	c.GET("/doctors", ListDoctors)
	c.GET("/doctors/:doctorId", FetchDoctor)
	c.GET("/doctors/:doctorId/slots", ListAvailableSlots)
	c.GET("/doctors/:doctorId/feedback", ApprovedFeedbackForDoctor)
}

func doctorID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("doctorId"))
	if err != nil {
		return 0, utils.Invalid("invalid doctor id")
	}
	return id, nil
}

func ListDoctors(c *gin.Context) {
	doctors, err := services.ListDoctors(c, c.Query("specialty"), c.Query("search"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctors))
}

func FetchDoctor(c *gin.Context) {
	id, err := doctorID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	doctor, err := services.FetchDoctorByID(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctor))
}

/*
* Open slots for one doctor on one date (?date=YYYY-MM-DD).
 */
func ListAvailableSlots(c *gin.Context) {
	id, err := doctorID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	slots, err := services.ListAvailableSlots(c, id, c.Query("date"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(slots))
}

func FetchDoctorDashboard(c *gin.Context) {
	dashboard, err := services.FetchDoctorDashboard(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(dashboard))
}

func UpdateDoctor(c *gin.Context) {
	id, err := doctorID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	var input services.DoctorUpdateInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	doctor, err := services.UpdateDoctor(c, id, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctor))
}

func DeactivateDoctor(c *gin.Context) {
	id, err := doctorID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	msg, err := services.DeactivateDoctor(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(msg))
}
