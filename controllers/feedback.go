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

func Feedback(c *gin.Engine) {
	feedback := c.Group("feedback")
	{
		feedback.POST("/create", authentication.RequireRoles(role.Patient), CreateFeedback)
		feedback.GET("/eligible", authentication.RequireRoles(role.Patient), FeedbackEligibleAppointments)
		feedback.GET("/pending", authentication.RequireRoles(role.Admin, role.Doctor), PendingFeedback)
		feedback.PATCH("/approve/:feedbackId", authentication.RequireRoles(role.Admin, role.Doctor), ApproveFeedback)
		feedback.DELETE("/delete/:feedbackId", authentication.RequireRoles(role.Admin, role.Doctor), DeleteFeedback)
	}
}

func feedbackID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("feedbackId"))
	if err != nil {
		return 0, utils.Invalid("invalid feedback id")
	}
	return id, nil
}

func CreateFeedback(c *gin.Context) {
	var input services.FeedbackInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	feedback, err := services.CreateFeedback(c, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(feedback))
}

func FeedbackEligibleAppointments(c *gin.Context) {
	appointments, err := services.FeedbackEligibleAppointments(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func PendingFeedback(c *gin.Context) {
	feedbacks, err := services.PendingFeedback(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(feedbacks))
}

// Approved feedback for one doctor, served on the public directory.
func ApprovedFeedbackForDoctor(c *gin.Context) {
	id, err := doctorID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	feedbacks, err := services.ApprovedFeedbackForDoctor(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(feedbacks))
}

func ApproveFeedback(c *gin.Context) {
	id, err := feedbackID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	msg, err := services.ApproveFeedback(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(msg))
}

func DeleteFeedback(c *gin.Context) {
	id, err := feedbackID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	msg, err := services.DeleteFeedback(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(msg))
}
