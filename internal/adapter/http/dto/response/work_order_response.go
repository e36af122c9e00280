package response

import (
	"fmt"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
)

type WorkOrderResponse struct {
	WorkOrderID        string    `json:"woId"`
	RequestID          string    `json:"requestId"`
	TechnicianRole     string    `json:"technician_role"`
	TechnicianRoleName string    `json:"technician_role_name"`
	RequestType        string    `json:"request_type"`
	Status             string    `json:"status"`
	POCreated          bool      `json:"po_created"`
	POID               string    `json:"po_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		WorkOrderID:        wo.ID,
		RequestID:          wo.RequestID,
		TechnicianRole:     string(wo.TechnicianRole),
		TechnicianRoleName: wo.TechnicianRoleName,
		RequestType:        wo.RequestType,
		Status:             string(wo.Status),
		POCreated:          wo.POCreated,
		POID:               wo.POID,
		CreatedAt:          wo.CreatedAt,
		UpdatedAt:          wo.UpdatedAt,
	}
}

func FromWorkOrders(items []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(items))
	for _, wo := range items {
		out = append(out, FromWorkOrder(wo))
	}
	return out
}

type WorkOrdersResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
}

// WorkOrderAckResponse acknowledges a status change without returning the work order.
type WorkOrderAckResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func FromResolutionAck(ack usecase.ResolutionAck) WorkOrderAckResponse {
	return WorkOrderAckResponse{
		Message: fmt.Sprintf("Work order %s updated successfully", ack.WorkOrderID),
		Status:  string(ack.Status),
	}
}
