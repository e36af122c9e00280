package usecase

import (
	"context"
	"fmt"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// UploadURLInput identifies the inspection photo a technician is about to upload.
type UploadURLInput struct {
	RequestID   string
	Role        string
	Remark      string
	WorkOrderID string
}

// IUploadUseCase mints signed upload URLs for inspection photos.
type IUploadUseCase interface {
	CreateUploadURL(ctx context.Context, in UploadURLInput) (string, error)
}

// UploadUseCase signs upload URLs for inspection photos.
type UploadUseCase struct {
	signer interfaces.IUploadURLSigner
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

// NewUploadUseCase accepts a nil signer; uploads then fail with
// ErrUploadSignerNotConfigured.
func NewUploadUseCase(signer interfaces.IUploadURLSigner) *UploadUseCase {
	return &UploadUseCase{signer: signer}
}

func (u *UploadUseCase) CreateUploadURL(ctx context.Context, in UploadURLInput) (string, error) {
	key, err := InspectionPhotoKey(in)
	if err != nil {
		return "", err
	}
	if u.signer == nil {
		return "", ErrUploadSignerNotConfigured
	}
	url, err := u.signer.SignUploadURL(ctx, key)
	if err != nil {
		zap.S().Errorw("[upload][usecase] signing failed", "key", key, "error", err)
		return "", storageError(err)
	}
	return url, nil
}

// InspectionPhotoKey builds the deterministic object key
// {requestId}/{ROLE}-{REMARK}/{woId}.jpg.
func InspectionPhotoKey(in UploadURLInput) (string, error) {
	requestID := strings.TrimSpace(in.RequestID)
	woID := strings.TrimSpace(in.WorkOrderID)
	remark := strings.ToLower(strings.TrimSpace(in.Remark))
	if requestID == "" || strings.TrimSpace(in.Role) == "" || remark == "" || woID == "" {
		return "", ErrMissingUploadParams
	}
	role, ok := entities.ParseTechnicianRole(in.Role)
	if !ok {
		return "", ErrInvalidTechnicianRole
	}
	if remark != "good" && remark != "replace" {
		return "", ErrInvalidRemark
	}
	return fmt.Sprintf("%s/%s-%s/%s.jpg", requestID, role, strings.ToUpper(remark), woID), nil
}
