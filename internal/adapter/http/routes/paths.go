package routes

import (
	"net/http"

	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests       = "/requests"
	PathWorkOrders     = "/work-orders"
	PathPurchaseOrders = "/purchase-orders"
	PathUploadURL      = "/upload-url"
	PathCustomer       = "/customer"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addRequestRoutes(rg *gin.RouterGroup, h *handlers.RequestHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("/incoming", h.ListIncoming)
		requests.GET("/incoming-with-workorders", h.ListIncomingWithWorkOrders)
		requests.GET("/completed", h.ListCompleted)
		requests.GET("/ordered", h.ListOrdered)
		requests.GET("/search", h.SearchRequest)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("", h.ListWorkOrders)
		workOrders.POST("/:id/inspect", h.InspectWorkOrder)
		workOrders.POST("/:id/submit", h.SubmitWorkOrder)
	}
}

func addPurchaseOrderRoutes(rg *gin.RouterGroup, h *handlers.PurchaseOrderHandler) {
	purchaseOrders := rg.Group(PathPurchaseOrders)
	{
		purchaseOrders.POST("", h.CreatePurchaseOrder)
		purchaseOrders.GET("", h.ListPurchaseOrders)
	}
}

func addUploadRoutes(rg *gin.RouterGroup, h *handlers.UploadHandler) {
	rg.GET(PathUploadURL, h.GetUploadURL)
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.RequestHandler) {
	customer := rg.Group(PathCustomer)
	{
		customer.GET("/request-status", h.GetCustomerRequestStatus)
	}
}
