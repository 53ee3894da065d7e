//go:generate mockgen -package mocks -destination mocks/interface.go -source=interface.go
//go:generate mockgen -package mocks -destination mocks/sdk_s3manager.go github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface UploaderAPI
package s3

import (
	"context"
	"io"
)

// Uploader puts a single object to a bucket.
type Uploader interface {
	// UploadFile streams body to s3://bucket/key and returns the object location.
	UploadFile(ctx context.Context, bucket string, key string, body io.Reader) (location string, err error)
}
