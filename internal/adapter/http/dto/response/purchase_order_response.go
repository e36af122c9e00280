package response

import (
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PurchaseOrderResponse struct {
	PurchaseOrderID string          `json:"poId"`
	RequestID       string          `json:"requestId"`
	WorkOrderID     string          `json:"woId"`
	ItemName        string          `json:"item_name"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromPurchaseOrder(po entities.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID: po.ID,
		RequestID:       po.RequestID,
		WorkOrderID:     po.WorkOrderID,
		ItemName:        po.ItemName,
		Quantity:        po.Quantity,
		Price:           po.Price,
		Status:          string(po.Status),
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}
}

func FromPurchaseOrders(items []entities.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, 0, len(items))
	for _, po := range items {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}

type PurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrderResponse `json:"purchase_orders"`
}

type PurchaseOrderCreatedResponse struct {
	Message         string `json:"message"`
	PurchaseOrderID string `json:"poId"`
}

func FromCreatedPurchaseOrder(po entities.PurchaseOrder) PurchaseOrderCreatedResponse {
	return PurchaseOrderCreatedResponse{Message: "Purchase order created successfully", PurchaseOrderID: po.ID}
}

type SignedURLResponse struct {
	SignedURL string `json:"signed_url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
