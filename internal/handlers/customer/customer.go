// internal/handlers/customer/customer.go
package customer

import (
	"net/http"

	"customer-registration-service/internal/domain/customer"
	"customer-registration-service/internal/pkg/response"
	service "customer-registration-service/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	registrationService *service.RegistrationService
}

func NewCustomerHandler(registrationService *service.RegistrationService) *CustomerHandler {
	return &CustomerHandler{
		registrationService: registrationService,
	}
}

// RegisterCustomer registers the customer in the request body
func (h *CustomerHandler) RegisterCustomer(c *gin.Context) {
	var body customer.RegisterCustomerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	candidate, err := body.Customer.ToCustomer()
	if err != nil {
		response.ValidationError(c, "invalid customer", err)
		return
	}

	err = h.registrationService.RegisterNewCustomer(c.Request.Context(), customer.RegistrationRequest{
		Customer: candidate,
	})
	if err != nil {
		response.FromError(c, "failed to register customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer registered", nil)
}

// GetCustomerByPhone retrieves a customer by phone number
func (h *CustomerHandler) GetCustomerByPhone(c *gin.Context) {
	var query customer.LookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "phone number is required", err)
		return
	}

	result, err := h.registrationService.LookupCustomerByPhone(c.Request.Context(), query.PhoneNumber)
	if err != nil {
		response.FromError(c, "customer not found", err)
		return
	}

	response.Success(c, http.StatusOK, "customer retrieved", result)
}
