// internal/app/router.go
package app

import (
	customerHandler "customer-registration-service/internal/handlers/customer"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	CustomerHandler *customerHandler.CustomerHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Customers ====================
	api.PUT("/customer-registration", h.CustomerHandler.RegisterCustomer)
	api.GET("/customers", h.CustomerHandler.GetCustomerByPhone)
}
