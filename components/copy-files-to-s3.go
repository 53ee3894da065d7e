package components

import (
	"context"
	"os"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/aws/s3"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/Luis23345432/Ingesta-Hotel2/stats"
)

type CopyFileToS3Config struct {
	Log             logger.Logger
	Name            string
	Uploader        s3.Uploader
	FileName        string // local file (with full path) to copy to S3.
	BucketName      string // target bucket
	Key             string // target object key
	RemoveInputFile bool   // true to delete the input file after successful copy to s3.
	StepWatcher     *stats.StepWatcher
}

// CopyFileToS3 uploads one local file to the bucket and returns the object location.
// The local file is closed on every path; a failure is returned as a TransferError.
func CopyFileToS3(ctx context.Context, cfg *CopyFileToS3Config) (location string, err error) {
	if cfg.Uploader == nil {
		cfg.Log.Panic(cfg.Name, " error - missing uploader.")
	}
	if cfg.BucketName == "" {
		cfg.Log.Panic(cfg.Name, " error - missing target bucket name.")
	}
	if cfg.Key == "" {
		cfg.Log.Panic(cfg.Name, " error - missing target key.")
	}
	bucket := strings.TrimPrefix(cfg.BucketName, "s3://")
	cfg.Log.Debug(cfg.Name, ": RemoveInputFile = ", cfg.RemoveInputFile)
	transferError := func(err error) error {
		return &TransferError{Bucket: bucket, Key: cfg.Key, Err: err}
	}
	fi, err := os.Open(cfg.FileName) // File implements io.Reader
	if err != nil {
		return "", transferError(err)
	}
	defer fi.Close() // nothing was written so a close error is of no interest.
	if cfg.StepWatcher != nil {
		if st, err := fi.Stat(); err == nil {
			cfg.StepWatcher.AddBytes(st.Size())
		}
	}
	// Setup log text based on copy vs move action.
	action := "moving"
	if !cfg.RemoveInputFile {
		action = "copying"
	}
	cfg.Log.Info(cfg.Name, " ", action, " file '", cfg.FileName, "' to 's3://", bucket, "/", cfg.Key, "'")
	location, err = cfg.Uploader.UploadFile(ctx, bucket, cfg.Key, fi)
	if err != nil {
		return "", transferError(err)
	}
	if cfg.StepWatcher != nil {
		cfg.StepWatcher.AddRows(1)
	}
	// Remove the local file after copy to S3.
	if cfg.RemoveInputFile { // if we are requested to move the file instead of just copy...
		_ = fi.Close()
		if err := os.Remove(cfg.FileName); err != nil {
			cfg.Log.Warn(cfg.Name, " unable to remove OS file '", cfg.FileName, "': ", err)
		} else {
			cfg.Log.Debug(cfg.Name, " removed file '", cfg.FileName, "'")
		}
	}
	cfg.Log.Info(cfg.Name, " complete: ", location)
	return location, nil
}
