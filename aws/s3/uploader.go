package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/pkg/errors"
)

type uploader struct {
	api s3manageriface.UploaderAPI
}

// NewUploader returns an Uploader that uses the multipart upload manager for the given region.
func NewUploader(region string) (Uploader, error) {
	sess, err := session.NewSession(aws.NewConfig().WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "error creating AWS session for S3")
	}
	return NewUploaderWithAPI(s3manager.NewUploader(sess)), nil
}

func NewUploaderWithAPI(api s3manageriface.UploaderAPI) Uploader {
	return &uploader{api: api}
}

func (u *uploader) UploadFile(ctx context.Context, bucket string, key string, body io.Reader) (string, error) {
	out, err := u.api.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", errors.Wrapf(err, "error uploading to s3://%v/%v", bucket, key)
	}
	if out == nil || out.Location == "" {
		return "s3://" + bucket + "/" + key, nil
	}
	return out.Location, nil
}
