package interfaces

import "context"

// IUploadURLSigner mints short-lived write URLs for inspection photos.
type IUploadURLSigner interface {
	SignUploadURL(ctx context.Context, objectKey string) (string, error)
}
