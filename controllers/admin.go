package controllers

import (
	"net/http"

	"MediCareHub/authentication"
	"MediCareHub/role"
	"MediCareHub/services"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
)

func Admin(c *gin.Engine) {
	admin := c.Group("admin", authentication.RequireRoles(role.Admin))
	{
		admin.GET("/dashboard", FetchDashboardStats)
		admin.GET("/reports", FetchReports)
	}
}

func FetchDashboardStats(c *gin.Context) {
	stats, err := services.FetchDashboardStats(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(stats))
}

func FetchReports(c *gin.Context) {
	reports, err := services.FetchReports(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(reports))
}
