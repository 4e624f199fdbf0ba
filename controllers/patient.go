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

func Patient(c *gin.Engine) {
	patient := c.Group("patient")
	{
		patient.GET("/dashboard", authentication.RequireRoles(role.Patient), FetchPatientDashboard)
		patient.GET("/fetchAll", authentication.RequireRoles(role.Admin, role.Doctor), ListPatients)
		patient.GET("/fetch/:patientId", authentication.RequireRoles(role.Admin, role.Doctor), FetchPatient)
		patient.PATCH("/update/:patientId", authentication.RequireRoles(role.Admin, role.Patient), UpdatePatient)
		patient.DELETE("/delete/:patientId", authentication.RequireRoles(role.Admin), DeactivatePatient)
	}
}

func patientID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("patientId"))
	if err != nil {
		return 0, utils.Invalid("invalid patient id")
	}
	return id, nil
}

func FetchPatientDashboard(c *gin.Context) {
	dashboard, err := services.FetchPatientDashboard(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(dashboard))
}

func ListPatients(c *gin.Context) {
	patients, err := services.ListPatients(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(patients))
}

func FetchPatient(c *gin.Context) {
	id, err := patientID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	patient, err := services.FetchPatientByID(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(patient))
}

func UpdatePatient(c *gin.Context) {
	id, err := patientID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	var input services.PatientUpdateInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	patient, err := services.UpdatePatient(c, id, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(patient))
}

func DeactivatePatient(c *gin.Context) {
	id, err := patientID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	msg, err := services.DeactivatePatient(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(msg))
}
