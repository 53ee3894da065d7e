package actions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Luis23345432/Ingesta-Hotel2/aws/dynamodb"
	"github.com/Luis23345432/Ingesta-Hotel2/aws/s3/mocks"
	"github.com/Luis23345432/Ingesta-Hotel2/components"
	"github.com/Luis23345432/Ingesta-Hotel2/config"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/Luis23345432/Ingesta-Hotel2/stream"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awsglue "github.com/aws/aws-sdk-go/service/glue"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTables serves pages per table name.
type fakeTables struct {
	pages map[string][][]map[string]interface{}
	fail  map[string]bool
	calls map[string]int
}

func newFakeTables() *fakeTables {
	return &fakeTables{pages: map[string][][]map[string]interface{}{}, fail: map[string]bool{}, calls: map[string]int{}}
}

func (f *fakeTables) ScanPage(_ context.Context, table string, _ dynamodb.Cursor, _ int64) (dynamodb.Page, error) {
	n := f.calls[table]
	f.calls[table]++
	if f.fail[table] && n > 0 { // fail on the second page
		return dynamodb.Page{}, errors.New("ResourceNotFoundException")
	}
	pages := f.pages[table]
	if n >= len(pages) {
		return dynamodb.Page{}, nil
	}
	p := dynamodb.Page{}
	for _, m := range pages[n] {
		p.Records = append(p.Records, stream.NewRecordFromMap(m))
	}
	p.Cursor = dynamodb.Cursor{"k": {S: aws.String(fmt.Sprint(n))}} // always more, until an empty page
	return p, nil
}

type fakeCatalog struct {
	databases   map[string]bool
	tables      map[string]*awsglue.TableInput
	tableExists bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{databases: map[string]bool{}, tables: map[string]*awsglue.TableInput{}}
}

func (f *fakeCatalog) DatabaseExists(_ context.Context, name string) (bool, error) {
	return f.databases[name], nil
}

func (f *fakeCatalog) CreateDatabase(_ context.Context, name string, _ string) error {
	f.databases[name] = true
	return nil
}

func (f *fakeCatalog) CreateTable(_ context.Context, database string, table *awsglue.TableInput) error {
	if f.tableExists {
		return awserr.New(awsglue.ErrCodeAlreadyExistsException, "exists", nil)
	}
	f.tables[database+"."+aws.StringValue(table.Name)] = table
	return nil
}

func (f *fakeCatalog) UpdateTable(_ context.Context, database string, table *awsglue.TableInput) error {
	f.tables[database+"."+aws.StringValue(table.Name)] = table
	return nil
}

func userPages() [][]map[string]interface{} {
	return [][]map[string]interface{}{
		{
			{"tenant_id": "t1", "user_id": "u1", "nombre": "Ana", "email": "ana@x.com", "password_hash": "h1", "fecha_registro": "2024-01-01"},
			{"tenant_id": "t1", "user_id": "u2", "nombre": "Luis, Jr.", "email": "luis@x.com"},
		},
		{
			{"tenant_id": "t2", "user_id": "u3"},
			{"tenant_id": "t2", "user_id": "u4", "nombre": "Eva\nMaria"},
		},
		{},
	}
}

type testJob struct {
	jc       *JobContext
	tables   *fakeTables
	catalog  *fakeCatalog
	uploader *mocks.MockUploader
	uploads  map[string][]byte
}

func newTestJob(t *testing.T, ctrl *gomock.Controller, spec entity.Spec) *testJob {
	tj := &testJob{
		tables:   newFakeTables(),
		catalog:  newFakeCatalog(),
		uploader: mocks.NewMockUploader(ctrl),
		uploads:  map[string][]byte{},
	}
	tj.jc = &JobContext{
		Log:       logger.NewLogger("ingesta", "error", false),
		Stage:     "dev",
		Bucket:    "bucket",
		OutputDir: t.TempDir(),
		Spec:      spec,
		Clients:   Clients{Source: tj.tables, Uploader: tj.uploader, Catalog: tj.catalog},
	}
	return tj
}

func (tj *testJob) expectUploads(times int) {
	tj.uploader.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(times).
		DoAndReturn(func(_ context.Context, bucket string, key string, body io.Reader) (string, error) {
			b, err := ioutil.ReadAll(body)
			if err != nil {
				return "", err
			}
			tj.uploads[bucket+"/"+key] = b
			return "s3://" + bucket + "/" + key, nil
		})
}

func TestRunIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Users)
	tj.tables.pages["dev-hotel-users"] = userPages()
	tj.expectUploads(1)

	res, err := RunIngest(context.Background(), tj.jc)
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, []JobState{StateEnsureCatalogDatabase, StateExportToFile, StateUploadFile, StateRegisterCatalogTable, StateDone}, res.History)
	assert.Equal(t, int64(4), res.RecordsScanned)
	assert.Equal(t, int64(3), res.Pages)
	assert.Equal(t, int64(4), res.RowsWritten)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "created", res.DatabaseOutcome)
	assert.Equal(t, "created", res.TableOutcome)
	assert.Equal(t, "s3://bucket/usuarios/", res.Location)

	want := "t1,u1,Ana,ana@x.com,h1,2024-01-01\n" +
		"t1,u2,\"Luis, Jr.\",luis@x.com,,\n" +
		"t2,u3,,,,\n" +
		"t2,u4,\"Eva\nMaria\",,,\n"
	local, err := ioutil.ReadFile(filepath.Join(tj.jc.OutputDir, "dev-usuarios.csv"))
	require.NoError(t, err)
	assert.Equal(t, want, string(local))
	assert.Equal(t, want, string(tj.uploads["bucket/usuarios/dev-usuarios.csv"]))

	assert.True(t, tj.catalog.databases["dev-glue-database"])
	tbl := tj.catalog.tables["dev-glue-database.dev-usuarios-table"]
	require.NotNil(t, tbl)
	assert.Equal(t, "s3://bucket/usuarios/", aws.StringValue(tbl.StorageDescriptor.Location))
	assert.Equal(t, "timestamp", aws.StringValue(tbl.StorageDescriptor.Columns[5].Type))
}

func TestRunIngestIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Users)
	tj.tables.pages["dev-hotel-users"] = userPages()
	tj.expectUploads(2)

	_, err := RunIngest(context.Background(), tj.jc)
	require.NoError(t, err)
	first := tj.uploads["bucket/usuarios/dev-usuarios.csv"]
	tj.tables.calls = map[string]int{}
	tj.catalog.tableExists = true
	res, err := RunIngest(context.Background(), tj.jc)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, tj.uploads["bucket/usuarios/dev-usuarios.csv"]))
	assert.Equal(t, "existed", res.DatabaseOutcome)
	assert.Equal(t, "updated", res.TableOutcome)
}

func TestRunIngestTableAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Reservations)
	tj.tables.pages["dev-hotel-reservations"] = [][]map[string]interface{}{
		{{"tenant_id": "t1", "reservation_id": "r1", "service_ids": []interface{}{"a", "b", "c"}}},
	}
	tj.catalog.tableExists = true
	tj.expectUploads(1)

	res, err := RunIngest(context.Background(), tj.jc)
	require.NoError(t, err)
	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, "t1,r1,,,a;b;c,,,\n", string(tj.uploads["bucket/reservations/dev-reservations.csv"]))
}

func TestRunIngestScanFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Comments)
	tj.tables.pages["dev-hotel-comments"] = [][]map[string]interface{}{{{"comment_id": "c1"}}, {{"comment_id": "c2"}}}
	tj.tables.fail["dev-hotel-comments"] = true
	// No upload is expected.

	res, err := RunIngest(context.Background(), tj.jc)
	require.Error(t, err)
	var sue *components.SourceUnavailableError
	assert.True(t, errors.As(err, &sue))
	assert.Equal(t, StateAborted, res.State)
	assert.Equal(t, StateExportToFile, res.FailedStep)
	assert.Equal(t, []JobState{StateEnsureCatalogDatabase, StateExportToFile, StateAborted}, res.History)
	_, statErr := os.Stat(filepath.Join(tj.jc.OutputDir, "dev-comments.csv"))
	assert.True(t, os.IsNotExist(statErr), "expected partial file to be removed")
	assert.Empty(t, tj.catalog.tables)
}

func TestRunIngestUploadFailureSkipsCatalogTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Payments)
	tj.tables.pages["dev-hotel-payments"] = [][]map[string]interface{}{{{"payment_id": "p1"}}}
	tj.uploader.EXPECT().UploadFile(gomock.Any(), "bucket", "payments/dev-payments.csv", gomock.Any()).Return("", errors.New("NoSuchBucket"))

	res, err := RunIngest(context.Background(), tj.jc)
	require.Error(t, err)
	var te *components.TransferError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, StateUploadFile, res.FailedStep)
	assert.Empty(t, tj.catalog.tables)
	assert.Equal(t, "EnsureCatalogDatabase > ExportToFile > UploadFile > Aborted", res.String())
}

func TestRunIngestValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Users)
	tj.jc.Stage = ""
	_, err := RunIngest(context.Background(), tj.jc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage")

	tj = newTestJob(t, ctrl, entity.Spec{Name: "broken"})
	_, err = RunIngest(context.Background(), tj.jc)
	require.Error(t, err)
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Spec{})
	tj.tables.pages["dev-hotel-comments"] = [][]map[string]interface{}{{{"comment_id": "c1"}}, {{"comment_id": "c2"}}}
	tj.tables.fail["dev-hotel-comments"] = true
	tj.expectUploads(5)

	results, err := RunAll(context.Background(), *tj.jc, entity.All())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comments job aborted")
	require.Len(t, results, 6)
	for _, r := range results {
		if r.Entity == "comments" {
			assert.Equal(t, StateAborted, r.State)
		} else {
			assert.Equal(t, StateDone, r.State, r.Entity)
		}
	}
	assert.Len(t, tj.uploads, 5)
}

func TestRunIngestCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tj := newTestJob(t, ctrl, entity.Spec{})
	tj.tables.pages["qa-hotel-comments"] = [][]map[string]interface{}{{{"comment_id": "c1", "comment_text": "Hello\r\nWorld"}}}
	tj.expectUploads(1)
	var gotRegion string
	cfg := &IngestConfig{
		Entity: "comment",
		Stage:  "qa",
		Bucket: "s3://bucket",
		Settings: config.Settings{
			Region:        "eu-west-1",
			LogLevel:      "error",
			OutputDir:     t.TempDir(),
			NewlinePolicy: "remove",
		},
		NewClients: func(region string) (Clients, error) {
			gotRegion = region
			return tj.jc.Clients, nil
		},
	}
	results, err := RunIngestCommand(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "eu-west-1", gotRegion)
	assert.Equal(t, ",c1,,,HelloWorld,\n", string(tj.uploads["bucket/comments/qa-comments.csv"]))

	cfg.Entity = "guests"
	_, err = RunIngestCommand(context.Background(), cfg)
	assert.Error(t, err)

	cfg.Entity = "comments"
	cfg.Settings.NewlinePolicy = "tabs"
	_, err = RunIngestCommand(context.Background(), cfg)
	assert.Error(t, err)

	cfg.Settings.NewlinePolicy = ""
	cfg.Bucket = "bucket/prefix"
	_, err = RunIngestCommand(context.Background(), cfg)
	assert.Error(t, err)
}
