package components

import (
	"context"
	"errors"
	"testing"

	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awsglue "github.com/aws/aws-sdk-go/service/glue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	databases      map[string]bool
	tables         map[string]*awsglue.TableInput
	existsErr      error
	createTableErr error
	updateTableErr error
	updates        int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{databases: map[string]bool{}, tables: map[string]*awsglue.TableInput{}}
}

func (f *fakeCatalog) DatabaseExists(_ context.Context, name string) (bool, error) {
	return f.databases[name], f.existsErr
}

func (f *fakeCatalog) CreateDatabase(_ context.Context, name string, _ string) error {
	if f.databases[name] {
		return awserr.New(awsglue.ErrCodeAlreadyExistsException, "database exists", nil)
	}
	f.databases[name] = true
	return nil
}

func (f *fakeCatalog) CreateTable(_ context.Context, database string, table *awsglue.TableInput) error {
	if f.createTableErr != nil {
		return f.createTableErr
	}
	key := database + "." + aws.StringValue(table.Name)
	if _, ok := f.tables[key]; ok {
		return awserr.New(awsglue.ErrCodeAlreadyExistsException, "table exists", nil)
	}
	f.tables[key] = table
	return nil
}

func (f *fakeCatalog) UpdateTable(_ context.Context, database string, table *awsglue.TableInput) error {
	f.updates++
	if f.updateTableErr != nil {
		return f.updateTableErr
	}
	f.tables[database+"."+aws.StringValue(table.Name)] = table
	return nil
}

func TestEnsureGlueDatabase(t *testing.T) {
	log := logger.NewLogger("ingesta", "error", false)
	cat := newFakeCatalog()
	cfg := &GlueDatabaseConfig{Log: log, Name: "Test EnsureGlueDatabase", Catalog: cat, DatabaseName: "dev-glue-database", Description: "d"}

	o, err := EnsureGlueDatabase(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CatalogCreated, o)

	o, err = EnsureGlueDatabase(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CatalogExisted, o)

	cat.existsErr = errors.New("AccessDeniedException")
	_, err = EnsureGlueDatabase(context.Background(), cfg)
	var ce *CatalogError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "dev-glue-database", ce.Database)
}

func newTableConfig(cat *fakeCatalog) *GlueTableConfig {
	spec := entity.Payments
	return &GlueTableConfig{
		Log:          logger.NewLogger("ingesta", "error", false),
		Name:         "Test RegisterGlueTable",
		Catalog:      cat,
		DatabaseName: entity.GlueDatabase("dev"),
		TableName:    spec.GlueTable("dev"),
		Location:     spec.Location("bucket"),
		Columns:      spec.CatalogColumns(),
	}
}

func TestRegisterGlueTable(t *testing.T) {
	cat := newFakeCatalog()
	cfg := newTableConfig(cat)

	o, err := RegisterGlueTable(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CatalogCreated, o)
	tbl := cat.tables["dev-glue-database.dev-payments-table"]
	require.NotNil(t, tbl)
	assert.Equal(t, "s3://bucket/payments/", aws.StringValue(tbl.StorageDescriptor.Location))
	require.Len(t, tbl.StorageDescriptor.Columns, 6)
	assert.Equal(t, "decimal", aws.StringValue(tbl.StorageDescriptor.Columns[3].Type))
}

func TestRegisterGlueTableAlreadyExists(t *testing.T) {
	cat := newFakeCatalog()
	cfg := newTableConfig(cat)
	_, err := RegisterGlueTable(context.Background(), cfg)
	require.NoError(t, err)

	// An existing table is re-declared.
	o, err := RegisterGlueTable(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CatalogUpdated, o)
	assert.Equal(t, 1, cat.updates)

	// A failed re-declaration is only a warning.
	cat.updateTableErr = errors.New("ConcurrentModificationException")
	o, err = RegisterGlueTable(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, CatalogConflict, o)
}

func TestRegisterGlueTableError(t *testing.T) {
	cat := newFakeCatalog()
	cat.createTableErr = awserr.New(awsglue.ErrCodeEntityNotFoundException, "no database", nil)
	_, err := RegisterGlueTable(context.Background(), newTableConfig(cat))
	var ce *CatalogError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "dev-payments-table", ce.Table)
	assert.Equal(t, 0, cat.updates)
}

func TestRegisterGlueTableRejectsNonTextColumnType(t *testing.T) {
	cat := newFakeCatalog()
	cfg := newTableConfig(cat)
	cfg.Columns.Set("monto_pago", 12)
	_, err := RegisterGlueTable(context.Background(), cfg)
	var ce *CatalogError
	require.True(t, errors.As(err, &ce))
	assert.Empty(t, cat.tables)
}
