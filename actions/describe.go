package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/ghodss/yaml"
)

type DescribeConfig struct {
	Entity string `errorTxt:"entity" mandatory:"yes"`
	Stage  string // optional; adds the derived names for the stage.
	Bucket string // optional; adds the table location.
	Format string `errorTxt:"output format" mandatory:"yes"`
}

// entityDescription is what describe prints.
type entityDescription struct {
	entity.Spec
	SourceTable string `json:"sourceTable,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	ObjectKey   string `json:"objectKey,omitempty"`
	Database    string `json:"database,omitempty"`
	Table       string `json:"table,omitempty"`
	Location    string `json:"location,omitempty"`
}

// RunDescribe writes the export definition of an entity to w as YAML or JSON.
func RunDescribe(cfg *DescribeConfig, w io.Writer) error {
	if cfg.Format == "" {
		cfg.Format = "yaml"
	}
	spec, err := entity.Lookup(cfg.Entity)
	if err != nil {
		return err
	}
	d := entityDescription{Spec: spec}
	if cfg.Stage != "" {
		d.SourceTable = spec.SourceTable(cfg.Stage)
		d.FileName = spec.FileName(cfg.Stage)
		d.ObjectKey = spec.ObjectKey(cfg.Stage)
		d.Database = entity.GlueDatabase(cfg.Stage)
		d.Table = spec.GlueTable(cfg.Stage)
	}
	if cfg.Bucket != "" {
		d.Location = spec.Location(cfg.Bucket)
	}
	var b []byte
	switch strings.ToLower(cfg.Format) {
	case "yaml", "yml":
		b, err = yaml.Marshal(d)
	case "json":
		b, err = json.MarshalIndent(d, "", "  ")
		b = append(b, '\n')
	default:
		return fmt.Errorf("unsupported output format %q, use yaml or json", cfg.Format)
	}
	if err != nil {
		return fmt.Errorf("error rendering entity %v: %v", spec.Name, err)
	}
	_, err = w.Write(b)
	return err
}
