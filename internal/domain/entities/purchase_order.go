package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus has a single value in the current scope; there is no
// cancellation or return flow.
type PurchaseOrderStatus string

const PurchaseOrderStatusCreated PurchaseOrderStatus = "CREATED"

// PurchaseOrder is the procurement record for one REPLACE work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (request_id-index): request_id
type PurchaseOrder struct {
	ID          string              `json:"poId"`
	RequestID   string              `json:"requestId"`
	WorkOrderID string              `json:"woId"`
	ItemName    string              `json:"item_name"`
	Quantity    int                 `json:"quantity"`
	Price       decimal.Decimal     `json:"price"`
	Status      PurchaseOrderStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
