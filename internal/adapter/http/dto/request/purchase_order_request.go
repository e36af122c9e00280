package request

import "github.com/shopspring/decimal"

// CreatePurchaseOrderRequest is the procurement payload for POST /purchase-orders.
// Price accepts a JSON number or a decimal string.
type CreatePurchaseOrderRequest struct {
	RequestID   string          `json:"requestId"`
	WorkOrderID string          `json:"woId"`
	ItemName    string          `json:"item_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}
