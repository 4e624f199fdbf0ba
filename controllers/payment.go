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

func Payment(c *gin.Engine) {
	payment := c.Group("payment")
	{
		payment.POST("/create", authentication.RequireRoles(role.Patient), CreatePayment)
		payment.GET("/fetch/:paymentId", FetchPayment)
		payment.GET("/fetchAll", FetchPayments)
		payment.GET("/pending", authentication.RequireRoles(role.Patient), PendingPaymentAppointments)
		payment.GET("/receipt/:paymentId", DownloadReceipt)
	}
}

func paymentID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("paymentId"))
	if err != nil {
		return 0, utils.Invalid("invalid payment id")
	}
	return id, nil
}

func CreatePayment(c *gin.Context) {
	var input services.PaymentInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}
	payment, err := services.CreatePayment(c, input)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(payment))
}

func FetchPayment(c *gin.Context) {
	id, err := paymentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	payment, err := services.FetchPayment(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(payment))
}

func FetchPayments(c *gin.Context) {
	payments, err := services.FetchPayments(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(payments))
}

func PendingPaymentAppointments(c *gin.Context) {
	appointments, err := services.PendingPaymentAppointments(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

/*
* Streams the receipt back as a PDF download.
 */
func DownloadReceipt(c *gin.Context) {
	id, err := paymentID(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	pdf, err := services.Receipt(c, id)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.FailedResponse(err))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=receipt.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
