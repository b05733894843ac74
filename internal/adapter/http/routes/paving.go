package routes

import (
	"onecrew_paving/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	rg.POST("/estimate", h.ComputeEstimate)
	rg.POST("/save-estimate", h.SaveEstimate)
	rg.GET("/estimate/:customerId/:estimateId", h.GetEstimate)
	rg.PUT("/update-estimate", h.UpdateEstimate)
	rg.DELETE("/delete-estimate", h.DeleteEstimate)
	rg.GET("/estimates/:customerId", h.ListEstimates)
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	rg.POST("/add-customer", h.AddCustomer)
	rg.GET("/customers", h.ListCustomers)
	rg.PUT("/update-customer", h.UpdateCustomer)
	rg.DELETE("/delete-customer", h.DeleteCustomer)
}
