package entities

import (
	"strings"
	"time"
)

// WorkOrderStatus is the inspection state of one technician task.
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "PENDING"
	WorkOrderStatusInProgress WorkOrderStatus = "IN-PROGRESS"
	WorkOrderStatusGood       WorkOrderStatus = "GOOD"
	WorkOrderStatusReplace    WorkOrderStatus = "REPLACE"
)

// IsTerminal reports whether the inspection produced an outcome.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusGood || s == WorkOrderStatusReplace
}

// TechnicianRole identifies which part of the installation a work order inspects.
type TechnicianRole string

const (
	TechnicianRoleUnit        TechnicianRole = "U"
	TechnicianRolePole        TechnicianRole = "P"
	TechnicianRoleTransformer TechnicianRole = "T"
)

// TechnicianRoles is the fixed fan-out set; every request gets one work order per entry.
var TechnicianRoles = []TechnicianRole{
	TechnicianRoleUnit,
	TechnicianRolePole,
	TechnicianRoleTransformer,
}

// Name returns the human readable role name.
func (r TechnicianRole) Name() string {
	switch r {
	case TechnicianRoleUnit:
		return "Unit"
	case TechnicianRolePole:
		return "Pole"
	case TechnicianRoleTransformer:
		return "Transformer"
	}
	return ""
}

// ParseTechnicianRole accepts role codes case-insensitively.
func ParseTechnicianRole(v string) (TechnicianRole, bool) {
	v = strings.ToUpper(strings.TrimSpace(v))
	for _, r := range TechnicianRoles {
		if v == string(r) {
			return r, true
		}
	}
	return "", false
}

// WorkOrder is one technician inspection task of a request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (request_id-index): request_id
//   - GSI (status-index): status
type WorkOrder struct {
	ID                 string          `json:"woId"`
	RequestID          string          `json:"requestId"`
	TechnicianRole     TechnicianRole  `json:"technician_role"`
	TechnicianRoleName string          `json:"technician_role_name"`
	RequestType        string          `json:"request_type"`
	Status             WorkOrderStatus `json:"status"`
	POCreated          bool            `json:"po_created"`
	POID               string          `json:"po_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
