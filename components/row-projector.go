package components

import (
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	h "github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/Luis23345432/Ingesta-Hotel2/stream"
)

var (
	newlinesToSpace = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	newlinesRemoved = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")
)

// ProjectRecord maps one source record to the output rows of spec.
// It never fails: absent attributes and values of an unexpected type become empty strings.
// A record yields one row, except when the list attribute of a list-flatten column holds a list,
// in which case it yields one row per list element (and none for an empty list).
func ProjectRecord(rec stream.Record, spec entity.Spec) [][]string {
	row := make([]string, len(spec.Columns))
	var flattenIdx = -1
	var flattenValues []string
	for idx, col := range spec.Columns {
		switch col.Rule {
		case entity.RuleListFlatten:
			v, _ := rec.GetData(flattenSource(col))
			if list, ok := h.GetStringSliceFromInterface(v); ok {
				flattenIdx = idx
				flattenValues = list
				continue
			}
			v, _ = rec.GetData(col.Source) // not a list: fall back to the single valued attribute.
			row[idx] = scalarValue(v)
		case entity.RuleListJoin:
			v, _ := rec.GetData(col.Source)
			if list, ok := h.GetStringSliceFromInterface(v); ok {
				row[idx] = strings.Join(list, constants.ListJoinDelimiter)
				continue
			}
			row[idx] = scalarValue(v)
		case entity.RuleStripNewlines:
			v, _ := rec.GetData(col.Source)
			row[idx] = stripNewlines(scalarValue(v), col.Newlines)
		default:
			v, _ := rec.GetData(col.Source)
			row[idx] = scalarValue(v)
		}
	}
	if flattenIdx < 0 {
		return [][]string{row}
	}
	retval := make([][]string, 0, len(flattenValues))
	for _, v := range flattenValues {
		r := make([]string, len(row))
		copy(r, row)
		r[flattenIdx] = v
		retval = append(retval, r)
	}
	return retval
}

func flattenSource(col entity.Column) string {
	if col.ListSource != "" {
		return col.ListSource
	}
	return col.Source
}

// scalarValue returns the text of v, or "" if v is absent or not a scalar.
func scalarValue(v interface{}) string {
	s, ok := h.GetStringFromInterface(v)
	if !ok {
		return ""
	}
	return s
}

func stripNewlines(s string, p entity.NewlinePolicy) string {
	if p == entity.NewlinesRemove {
		return newlinesRemoved.Replace(s)
	}
	return newlinesToSpace.Replace(s)
}
