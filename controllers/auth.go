package controllers

import (
	"net/http"

	"MediCareHub/services"
	"MediCareHub/utils"

	"github.com/gin-gonic/gin"
)

func Auth(c *gin.Engine) {
	auth := c.Group("auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	user, err := services.Register(c, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(user))
}

func Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	result, err := services.Login(c, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(result))
}
