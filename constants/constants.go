package constants

// Naming

const (
	ServiceName        = "ingesta"
	EnvVarPrefix       = "INGESTA" // prefixed for environment variables in twelveFactorMode and config lookups
	ConfigDir          = ".ingesta"
	ConfigFileName     = "config.yaml"
	SourceTableFormat  = "%v-hotel-%v"      // <stage>-hotel-<table>
	OutputFileFormat   = "%v-%v.csv"        // <stage>-<file stem>.csv
	GlueDatabaseFormat = "%v-glue-database" // <stage>-glue-database
	GlueTableFormat    = "%v-%v-table"      // <stage>-<file stem>-table
	S3LocationFormat   = "s3://%v/%v/"      // s3://<bucket>/<folder>/
)

// Defaults

const (
	DefaultRegion        = "us-east-1"
	DefaultLogLevel      = "info"
	DefaultPageSize      = 0 // let DynamoDB decide (1MB pages)
	DefaultNewlinePolicy = "space"
	ListJoinDelimiter    = ";" // must never collide with CsvDelimiter
	CsvDelimiter         = ','
)

// Glue external table definition for delimited text.

const (
	GlueTableTypeExternal   = "EXTERNAL_TABLE"
	GlueClassificationKey   = "classification"
	GlueClassificationCsv   = "csv"
	GlueInputFormat         = "org.apache.hadoop.mapred.TextInputFormat"
	GlueOutputFormat        = "org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat"
	GlueSerializationLib    = "org.apache.hadoop.hive.serde2.lazy.LazySimpleSerDe"
	GlueFieldDelimParameter = "field.delim"
)

// Column types understood by the catalog.

const (
	ColumnTypeString    = "string"
	ColumnTypeInt       = "int"
	ColumnTypeDecimal   = "decimal"
	ColumnTypeTimestamp = "timestamp"
)

// Config keys shared by env vars and the config file.

const (
	ConfigKeyRegion        = "region"
	ConfigKeyLogLevel      = "log-level"
	ConfigKeyLogFile       = "log-file"
	ConfigKeyOutputDir     = "output-dir"
	ConfigKeyPageSize      = "page-size"
	ConfigKeyNewlinePolicy = "newline-policy"
)
