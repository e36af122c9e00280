package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of them so handlers can map
// by kind when they have no specific mapping.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrPrecondition = errors.New("precondition failed")
	ErrConflict     = errors.New("conflict")
	ErrStorage      = errors.New("storage error")
)

var (
	ErrInvalidRequestInput = kindError(ErrValidation, "customer_name, phone_number and location are required")
	ErrInvalidRequestID    = kindError(ErrValidation, "requestId is required")
	ErrRequestNotFound     = kindError(ErrNotFound, "request not found")

	ErrInvalidWorkOrderID       = kindError(ErrValidation, "work order id is required")
	ErrInvalidWorkOrderStatus   = kindError(ErrValidation, "status must be one of IN-PROGRESS, GOOD, REPLACE")
	ErrMissingRemark            = kindError(ErrValidation, "remark is required")
	ErrWorkOrderNotFound        = kindError(ErrNotFound, "work order not found")
	ErrWorkOrderAlreadyResolved = kindError(ErrConflict, "work order already resolved")

	ErrInvalidPurchaseOrderInput  = kindError(ErrValidation, "requestId, woId and item_name are required")
	ErrInvalidPurchaseOrderAmount = kindError(ErrValidation, "quantity and price must not be negative")
	ErrInspectionNotCompleted     = kindError(ErrPrecondition, "inspection not completed yet")
	ErrReplacementNotRequired     = kindError(ErrPrecondition, "replacement not required for this request")
	ErrWorkOrderNotInRequest      = kindError(ErrPrecondition, "work order does not belong to this request")
	ErrWorkOrderNotReplace        = kindError(ErrPrecondition, "work order does not require replacement")
	ErrPurchaseOrderAlreadyExists = kindError(ErrPrecondition, "purchase order already created for this work order")

	ErrMissingUploadParams       = kindError(ErrValidation, "requestId, role, remark and woId are required")
	ErrInvalidTechnicianRole     = kindError(ErrValidation, "invalid role")
	ErrInvalidRemark             = kindError(ErrValidation, "invalid remark")
	ErrUploadSignerNotConfigured = kindError(ErrStorage, "upload url signer not configured")
)

func kindError(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
