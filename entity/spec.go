package entity

import (
	"fmt"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	om "github.com/cevaris/ordered_map"
)

// Column is one output column of an entity export.
type Column struct {
	Name       string        `json:"name"`                 // output and catalog column name
	Source     string        `json:"source"`               // attribute read from the source record
	Type       string        `json:"type"`                 // catalog type only; values are always written as text
	Rule       Rule          `json:"rule"`                 // normalisation
	ListSource string        `json:"listSource,omitempty"` // list-flatten only: the multi-valued attribute
	Newlines   NewlinePolicy `json:"newlines,omitempty"`   // strip-newlines only
}

// Spec describes how one entity is exported and catalogued.
// Specs are values; methods never modify the receiver.
type Spec struct {
	Name                string   `json:"name"`
	Table               string   `json:"table"`              // source table is <stage>-hotel-<Table>
	Folder              string   `json:"folder"`             // object store folder
	FileStem            string   `json:"fileStem,omitempty"` // names the file and catalog table; defaults to Name
	DatabaseDescription string   `json:"databaseDescription"`
	Columns             []Column `json:"columns"`
}

func (s Spec) SourceTable(stage string) string {
	return fmt.Sprintf(constants.SourceTableFormat, stage, s.Table)
}

func (s Spec) FileName(stage string) string {
	return fmt.Sprintf(constants.OutputFileFormat, stage, s.stem())
}

func (s Spec) GlueTable(stage string) string {
	return fmt.Sprintf(constants.GlueTableFormat, stage, s.stem())
}

func (s Spec) stem() string {
	if s.FileStem != "" {
		return s.FileStem
	}
	return s.Name
}

// ObjectKey is the key of the uploaded file inside the bucket.
func (s Spec) ObjectKey(stage string) string {
	return s.Folder + "/" + s.FileName(stage)
}

// Location is the catalog table location, i.e. the folder holding the file.
func (s Spec) Location(bucket string) string {
	return fmt.Sprintf(constants.S3LocationFormat, strings.TrimPrefix(bucket, "s3://"), s.Folder)
}

// GlueDatabase is shared by all entities of a stage.
func GlueDatabase(stage string) string {
	return fmt.Sprintf(constants.GlueDatabaseFormat, stage)
}

func (s Spec) ColumnNames() []string {
	retval := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		retval = append(retval, c.Name)
	}
	return retval
}

// CatalogColumns returns column name → catalog type in output order.
func (s Spec) CatalogColumns() *om.OrderedMap {
	retval := om.NewOrderedMap()
	for _, c := range s.Columns {
		t := c.Type
		if t == "" {
			t = constants.ColumnTypeString
		}
		retval.Set(c.Name, t)
	}
	return retval
}

// FlattenColumn returns the index of the list-flatten column or -1.
func (s Spec) FlattenColumn() int {
	for idx, c := range s.Columns {
		if c.Rule == RuleListFlatten {
			return idx
		}
	}
	return -1
}

// WithNewlinePolicy returns a copy of s where strip-newlines columns using the default policy use p instead.
func (s Spec) WithNewlinePolicy(p NewlinePolicy) Spec {
	if p == NewlinesDefault {
		return s
	}
	cols := make([]Column, len(s.Columns))
	copy(cols, s.Columns)
	for idx := range cols {
		if cols[idx].Rule == RuleStripNewlines && cols[idx].Newlines == NewlinesDefault {
			cols[idx].Newlines = p
		}
	}
	s.Columns = cols
	return s
}

// Validate checks that the spec can drive an export.
func (s Spec) Validate() error {
	if s.Name == "" || s.Table == "" || s.Folder == "" {
		return fmt.Errorf("entity spec requires a name, table and folder: %+v", s)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("entity %v has no columns", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Columns))
	flatten := 0
	for idx, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("entity %v column %v has no name", s.Name, idx)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("entity %v has duplicate column %v", s.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.Source == "" && c.ListSource == "" {
			return fmt.Errorf("entity %v column %v has no source attribute", s.Name, c.Name)
		}
		if c.Rule == RuleListFlatten {
			flatten++
		}
		if _, ok := ruleNames[c.Rule]; !ok {
			return fmt.Errorf("entity %v column %v has unknown rule %v", s.Name, c.Name, c.Rule)
		}
	}
	if flatten > 1 {
		return fmt.Errorf("entity %v has %v list-flatten columns but at most one is supported", s.Name, flatten)
	}
	return nil
}
