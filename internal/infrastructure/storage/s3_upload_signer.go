package storage

import (
	"context"
	"errors"
	"time"

	"fieldservice/internal/infrastructure/config"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	uploadContentType   = "application/octet-stream"
	defaultUploadExpiry = 15 * time.Minute
)

// presignPutAPI is the subset of *s3.PresignClient used to sign uploads.
type presignPutAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3UploadSigner mints presigned PUT URLs for inspection photos. Signing is local;
// no request reaches S3 until the technician uploads.
type S3UploadSigner struct {
	presign presignPutAPI
	bucket  string
	expiry  time.Duration
}

var _ interfaces.IUploadURLSigner = (*S3UploadSigner)(nil)

// NewS3UploadSigner builds the S3 client from the shared AWS config. S3_ENDPOINT and
// S3_PATH_STYLE target S3-compatible stores such as MinIO or LocalStack.
func NewS3UploadSigner(awsCfg aws.Config, cfg config.Uploads) (*S3UploadSigner, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("INSPECTION_BUCKET is required to sign uploads")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3UploadSigner(s3.NewPresignClient(client), cfg.Bucket, cfg.Expiry), nil
}

func newS3UploadSigner(presign presignPutAPI, bucket string, expiry time.Duration) *S3UploadSigner {
	if expiry <= 0 {
		expiry = defaultUploadExpiry
	}
	return &S3UploadSigner{presign: presign, bucket: bucket, expiry: expiry}
}

func (s *S3UploadSigner) SignUploadURL(ctx context.Context, objectKey string) (string, error) {
	out, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(uploadContentType),
	}, func(po *s3.PresignOptions) { po.Expires = s.expiry })
	if err != nil {
		return "", err
	}
	return out.URL, nil
}
