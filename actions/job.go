package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/Luis23345432/Ingesta-Hotel2/aws/dynamodb"
	"github.com/Luis23345432/Ingesta-Hotel2/aws/glue"
	"github.com/Luis23345432/Ingesta-Hotel2/aws/s3"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/Luis23345432/Ingesta-Hotel2/stats"
)

// JobState is a state of the ingest state machine.
type JobState int

const (
	StateEnsureCatalogDatabase JobState = iota + 1
	StateExportToFile
	StateUploadFile
	StateRegisterCatalogTable
	StateDone
	StateAborted
)

var jobStateNames = map[JobState]string{
	StateEnsureCatalogDatabase: "EnsureCatalogDatabase",
	StateExportToFile:          "ExportToFile",
	StateUploadFile:            "UploadFile",
	StateRegisterCatalogTable:  "RegisterCatalogTable",
	StateDone:                  "Done",
	StateAborted:               "Aborted",
}

func (s JobState) String() string {
	if n, ok := jobStateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("JobState(%d)", int(s))
}

func (s JobState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Clients are the AWS services a job talks to.
type Clients struct {
	Source   dynamodb.PageScanner `errorTxt:"DynamoDB client" mandatory:"yes"`
	Uploader s3.Uploader          `errorTxt:"S3 uploader" mandatory:"yes"`
	Catalog  glue.Catalog         `errorTxt:"Glue client" mandatory:"yes"`
}

// NewAWSClients builds real clients for region.
func NewAWSClients(region string) (Clients, error) {
	src, err := dynamodb.NewClient(region)
	if err != nil {
		return Clients{}, err
	}
	up, err := s3.NewUploader(region)
	if err != nil {
		return Clients{}, err
	}
	cat, err := glue.NewClient(region)
	if err != nil {
		return Clients{}, err
	}
	return Clients{Source: src, Uploader: up, Catalog: cat}, nil
}

// JobContext holds everything one entity job needs. Nothing is read from globals.
type JobContext struct {
	Log       *logger.LoggerImpl `errorTxt:"logger" mandatory:"yes"`
	Stage     string             `errorTxt:"stage" mandatory:"yes"`
	Bucket    string             `errorTxt:"bucket" mandatory:"yes"`
	OutputDir string             `errorTxt:"output directory"`
	PageSize  int64              `errorTxt:"page size"`
	Spec      entity.Spec
	Clients   Clients
}

// JobResult summarises one job run.
type JobResult struct {
	Entity          string        `json:"entity"`
	Stage           string        `json:"stage"`
	RunID           string        `json:"runId"`
	State           JobState      `json:"state"`
	History         []JobState    `json:"history"`
	FailedStep      JobState      `json:"failedStep,omitempty"`
	SourceTable     string        `json:"sourceTable"`
	FileName        string        `json:"fileName"`
	Location        string        `json:"location,omitempty"`
	Database        string        `json:"database"`
	Table           string        `json:"table"`
	DatabaseOutcome string        `json:"databaseOutcome,omitempty"`
	TableOutcome    string        `json:"tableOutcome,omitempty"`
	RecordsScanned  int64         `json:"recordsScanned"`
	Pages           int64         `json:"pages"`
	RowsWritten     int64         `json:"rowsWritten"`
	Elapsed         time.Duration `json:"elapsed"`
	Stats           []stats.Stats `json:"stats,omitempty"`
}

// Succeeded is true if the job reached Done.
func (r JobResult) Succeeded() bool {
	return r.State == StateDone
}

// String renders the state history, e.g. EnsureCatalogDatabase > ExportToFile > Aborted.
func (r JobResult) String() string {
	parts := make([]string, 0, len(r.History))
	for _, s := range r.History {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " > ")
}
