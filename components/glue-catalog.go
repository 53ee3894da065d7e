package components

import (
	"context"

	"github.com/Luis23345432/Ingesta-Hotel2/aws/glue"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	om "github.com/cevaris/ordered_map"
)

// CatalogOutcome says what a catalog step did.
type CatalogOutcome int

const (
	CatalogCreated  CatalogOutcome = iota + 1 // the database or table was created.
	CatalogExisted                            // the database already existed.
	CatalogUpdated                            // the table already existed and was re-declared.
	CatalogConflict                           // the table already existed and could not be re-declared.
)

func (o CatalogOutcome) String() string {
	switch o {
	case CatalogCreated:
		return "created"
	case CatalogExisted:
		return "existed"
	case CatalogUpdated:
		return "updated"
	case CatalogConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type GlueDatabaseConfig struct {
	Log          logger.Logger
	Name         string
	Catalog      glue.Catalog
	DatabaseName string
	Description  string
}

// EnsureGlueDatabase creates the catalog database unless it exists already.
func EnsureGlueDatabase(ctx context.Context, cfg *GlueDatabaseConfig) (CatalogOutcome, error) {
	if cfg.Catalog == nil {
		cfg.Log.Panic(cfg.Name, " error - missing catalog client.")
	}
	cfg.Log.Info(cfg.Name, " is running")
	exists, err := cfg.Catalog.DatabaseExists(ctx, cfg.DatabaseName)
	if err != nil {
		return 0, &CatalogError{Database: cfg.DatabaseName, Err: err}
	}
	if exists {
		cfg.Log.Info(cfg.Name, " database '", cfg.DatabaseName, "' already exists")
		return CatalogExisted, nil
	}
	err = cfg.Catalog.CreateDatabase(ctx, cfg.DatabaseName, cfg.Description)
	if glue.IsAlreadyExists(err) { // if another job created it in the meantime...
		cfg.Log.Warn(cfg.Name, " database '", cfg.DatabaseName, "' already exists")
		return CatalogExisted, nil
	}
	if err != nil {
		return 0, &CatalogError{Database: cfg.DatabaseName, Err: err}
	}
	cfg.Log.Info(cfg.Name, " created database '", cfg.DatabaseName, "'")
	return CatalogCreated, nil
}

type GlueTableConfig struct {
	Log          logger.Logger
	Name         string
	Catalog      glue.Catalog
	DatabaseName string
	TableName    string
	Location     string         // s3://<bucket>/<folder>/
	Columns      *om.OrderedMap // column name -> catalog type, in file order.
}

// RegisterGlueTable declares the external table over the uploaded file.
// An existing table is re-declared so that its schema and location follow the current definition;
// if that fails too the conflict is logged and not treated as an error.
func RegisterGlueTable(ctx context.Context, cfg *GlueTableConfig) (CatalogOutcome, error) {
	if cfg.Catalog == nil {
		cfg.Log.Panic(cfg.Name, " error - missing catalog client.")
	}
	if cfg.Columns == nil || cfg.Columns.Len() == 0 {
		cfg.Log.Panic(cfg.Name, " error - missing table columns.")
	}
	cfg.Log.Info(cfg.Name, " is running")
	cols, err := helper.OrderedMapToTokens(cfg.Columns) // column names and types must both be text.
	if err != nil {
		return 0, &CatalogError{Database: cfg.DatabaseName, Table: cfg.TableName, Err: err}
	}
	cfg.Log.Debug(cfg.Name, " table '", cfg.TableName, "' columns: ", cols)
	table := glue.NewCsvTableInput(cfg.TableName, cfg.Location, cfg.Columns)
	err = cfg.Catalog.CreateTable(ctx, cfg.DatabaseName, table)
	if err == nil {
		cfg.Log.Info(cfg.Name, " created table '", cfg.DatabaseName, ".", cfg.TableName, "' at ", cfg.Location)
		return CatalogCreated, nil
	}
	if !glue.IsAlreadyExists(err) {
		return 0, &CatalogError{Database: cfg.DatabaseName, Table: cfg.TableName, Err: err}
	}
	cfg.Log.Warn(cfg.Name, " table '", cfg.DatabaseName, ".", cfg.TableName, "' already exists, updating it")
	if err := cfg.Catalog.UpdateTable(ctx, cfg.DatabaseName, table); err != nil {
		cfg.Log.Warn(cfg.Name, " unable to update table '", cfg.DatabaseName, ".", cfg.TableName, "': ", err)
		return CatalogConflict, nil
	}
	cfg.Log.Info(cfg.Name, " updated table '", cfg.DatabaseName, ".", cfg.TableName, "' at ", cfg.Location)
	return CatalogUpdated, nil
}
