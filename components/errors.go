package components

import (
	"fmt"
)

// SourceUnavailableError is returned when a page of the source table cannot be read.
type SourceUnavailableError struct {
	Table string
	Err   error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source table %v unavailable: %v", e.Table, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
func (e *SourceUnavailableError) Cause() error  { return e.Err }

// FileIOError is returned when the local output file cannot be created, written or closed.
type FileIOError struct {
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("file %v: %v", e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error { return e.Err }
func (e *FileIOError) Cause() error  { return e.Err }

// TransferError is returned when the output file cannot be uploaded.
type TransferError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer to s3://%v/%v failed: %v", e.Bucket, e.Key, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
func (e *TransferError) Cause() error  { return e.Err }

// CatalogError is returned for catalog failures other than an existing database or table.
type CatalogError struct {
	Database string
	Table    string // empty for database operations
	Err      error
}

func (e *CatalogError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("catalog database %v: %v", e.Database, e.Err)
	}
	return fmt.Sprintf("catalog table %v.%v: %v", e.Database, e.Table, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }
func (e *CatalogError) Cause() error  { return e.Err }
