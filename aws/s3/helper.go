package s3

import (
	"fmt"
	"net/url"
	"strings"
)

type AwsS3Bucket struct {
	Name   string `errorTxt:"bucket name" mandatory:"yes"`
	Prefix string `errorTxt:"bucket prefix"`
}

// ParseDSN expects bucketPrefix to be of the form [s3://]<bucket>[/<prefix>]
// It returns an AwsS3Bucket populated with the components of bucketPrefix.
// If there is a parsing error it returns an error.
func ParseDSN(bucketPrefix string) (retval AwsS3Bucket, err error) {
	expectedScheme := "s3"
	if !strings.Contains(bucketPrefix, "://") {
		bucketPrefix = expectedScheme + "://" + bucketPrefix
	}
	s3url, err := url.Parse(bucketPrefix)
	if err != nil {
		return retval, fmt.Errorf("error parsing S3 URL: %v", err)
	}
	if s3url.Scheme != expectedScheme {
		return retval, fmt.Errorf("expected S3 URL scheme %q but got %q", expectedScheme, s3url.Scheme)
	}
	retval.Name = s3url.Host
	if retval.Name == "" {
		return retval, fmt.Errorf("DSN failed to parse bucket name")
	}
	retval.Prefix = strings.Trim(s3url.Path, "/")
	return
}

// ParseBucketName accepts a bare bucket name or s3://<bucket> and returns the bucket name.
// A key prefix is rejected since object keys are fixed per entity.
func ParseBucketName(bucket string) (string, error) {
	b, err := ParseDSN(strings.TrimSpace(bucket))
	if err != nil {
		return "", err
	}
	if b.Prefix != "" {
		return "", fmt.Errorf("unexpected key prefix %q in bucket %q", b.Prefix, bucket)
	}
	return b.Name, nil
}
