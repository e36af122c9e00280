package handlers

import (
	"errors"
	"net/http"

	"fieldservice/internal/usecase"
	"fieldservice/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid JSON payload", http.StatusBadRequest)
)

// mapErrorKind is the fallback for every handler: the kind sentinel decides the
// status when no specific mapping matched.
func mapErrorKind(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrecondition):
		return pkg.NewDomainErrorSimple("PRECONDITION_FAILED", "Precondition failed", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Conflicting update", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "customer_name, phone_number and location are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_ID", "requestId is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return mapErrorKind(err)
	}
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRemark):
		return pkg.NewDomainErrorSimple("MISSING_REMARK", "remark is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_STATUS", "remark must be GOOD or REPLACE", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_ID", "work order id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderAlreadyResolved):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ALREADY_RESOLVED", "Work order already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return mapErrorKind(err)
	}
}

func mapPurchaseOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPurchaseOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_PURCHASE_ORDER_INPUT", "requestId, woId and item_name are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPurchaseOrderAmount):
		return pkg.NewDomainErrorSimple("INVALID_PURCHASE_ORDER_AMOUNT", "quantity and price must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInspectionNotCompleted):
		return pkg.NewDomainErrorSimple("INSPECTION_NOT_COMPLETED", "Inspection not completed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrReplacementNotRequired):
		return pkg.NewDomainErrorSimple("REPLACEMENT_NOT_REQUIRED", "Replacement not required for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_ALREADY_EXISTS", "Purchase order already created for this work order", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotInRequest):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_IN_REQUEST", "Work order does not belong to this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotReplace):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_REPLACE", "Work order does not require replacement", http.StatusConflict)
	default:
		return mapErrorKind(err)
	}
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingUploadParams):
		return pkg.NewDomainErrorSimple("MISSING_PARAMETERS", "Missing parameters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTechnicianRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Invalid role", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRemark):
		return pkg.NewDomainErrorSimple("INVALID_REMARK", "Invalid remark", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUploadSignerNotConfigured):
		return pkg.NewDomainErrorSimple("UPLOADS_NOT_CONFIGURED", "Uploads are not configured", http.StatusServiceUnavailable)
	default:
		return mapErrorKind(err)
	}
}
