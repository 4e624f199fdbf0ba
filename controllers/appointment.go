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

func Appointment(c *gin.Engine) {
	appointment := c.Group("appointment")
	{
		appointment.POST("/book", authentication.RequireRoles(role.Patient), BookAppointment)
		appointment.POST("/create", authentication.RequireRoles(role.Admin, role.Doctor), CreateAppointment)
		appointment.GET("/fetch/:appointmentId", FetchAppointment)
		appointment.GET("/fetchAll", FetchAllAppointments)
		appointment.PATCH("/status/:appointmentId", authentication.RequireRoles(role.Admin, role.Doctor), UpdateAppointmentStatus)
		appointment.PATCH("/reschedule/:appointmentId", authentication.RequireRoles(role.Admin, role.Doctor), RescheduleAppointment)
		appointment.PATCH("/clinical/:appointmentId", authentication.RequireRoles(role.Admin, role.Doctor), UpdateClinicalDetails)
		appointment.POST("/cancel/:appointmentId", CancelAppointment)
		appointment.DELETE("/delete/:appointmentId", authentication.RequireRoles(role.Admin), DeleteAppointment)
	}
}

func appointmentID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("appointmentId"))
	if err != nil {
		return 0, utils.Invalid("invalid appointment id")
	}
	return id, nil
}

/*
* Bind JSON
* And pass to the service; the patient id comes from the token.
 */
func BookAppointment(c *gin.Context) {
	var input services.BookingInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	appointment, err := services.BookAppointment(c, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func CreateAppointment(c *gin.Context) {
	var input services.ManualAppointmentInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	appointment, err := services.CreateAppointment(c, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func FetchAppointment(c *gin.Context) {
	id, err := appointmentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	appointment, err := services.FetchAppointment(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func UpdateAppointmentStatus(c *gin.Context) {
	id, err := appointmentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	var input struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	appointment, err := services.UpdateAppointmentStatus(c, id, input.Status, input.Notes)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func RescheduleAppointment(c *gin.Context) {
	id, err := appointmentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	appointment, err := services.RescheduleAppointment(c, id, input.Date, input.Time)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func UpdateClinicalDetails(c *gin.Context) {
	id, err := appointmentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	var input services.ClinicalInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	appointment, err := services.UpdateClinicalDetails(c, id, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func CancelAppointment(c *gin.Context) {
	id, err := appointmentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	var input struct {
		Reason string `json:"reason"`
	}
	// reason is optional; an empty body is fine
	_ = c.BindJSON(&input)

	appointment, err := services.CancelAppointment(c, id, input.Reason)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func DeleteAppointment(c *gin.Context) {
	id, err := appointmentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	msg, err := services.DeleteAppointment(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(msg))
}
