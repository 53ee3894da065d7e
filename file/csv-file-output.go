package file

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/pkg/errors"
)

// CSVFileOutput writes records to a single OS file with no header row.
// Only values containing the delimiter, a quote or a line break are quoted, with quotes doubled.
// Anything else is written bare, including leading or trailing spaces, because the catalog
// reads the files with LazySimpleSerDe which does not strip quotes.
type CSVFileOutput struct {
	log         logger.Logger
	name        string
	file        *os.File
	fWriter     *bufio.Writer
	comma       rune
	rowCount    int64
	needCleanup bool
}

// NewCSVFileOutput creates (or truncates) fileName for writing, creating its directory if required.
func NewCSVFileOutput(log logger.Logger, fileName string) (*CSVFileOutput, error) {
	if dir := filepath.Dir(fileName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "unable to create output directory %v", dir)
		}
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create OS file with name %v", fileName)
	}
	o := &CSVFileOutput{log: log, name: fileName, file: f, comma: constants.CsvDelimiter, needCleanup: true}
	o.fWriter = bufio.NewWriter(f)
	log.Debug("CSVFileOutput created file ", fileName)
	return o, nil
}

// WriteRecord writes one record as one CSV line.
func (f *CSVFileOutput) WriteRecord(record []string) error {
	if !f.needCleanup {
		return errors.Errorf("write to closed CSV file %v", f.name)
	}
	f.log.Trace("Writing record...", record)
	if _, err := f.fWriter.WriteString(f.formatRecord(record)); err != nil {
		return errors.Wrapf(err, "unable to write to CSV file %v", f.name)
	}
	f.rowCount++
	return nil
}

// formatRecord renders record as one line terminated by LF.
// A record holding a single empty value is written as "" so the line is not blank.
func (f *CSVFileOutput) formatRecord(record []string) string {
	if len(record) == 1 && record[0] == "" {
		return "\"\"\n"
	}
	b := strings.Builder{}
	for idx, field := range record {
		if idx > 0 {
			b.WriteRune(f.comma)
		}
		if !strings.ContainsRune(field, f.comma) && !strings.ContainsAny(field, "\"\r\n") {
			b.WriteString(field)
			continue
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}

// Name returns the full path of the output file.
func (f *CSVFileOutput) Name() string {
	return f.name
}

// RowCount returns the number of data rows written so far.
func (f *CSVFileOutput) RowCount() int64 {
	return f.rowCount
}

// Close flushes the CSV writer and closes the OS file.
// It can be deferred by the caller and called again explicitly; only the first call does any work.
func (f *CSVFileOutput) Close() error {
	if !f.needCleanup {
		return nil
	}
	f.needCleanup = false
	err := f.fWriter.Flush()
	if cerr := f.file.Close(); cerr != nil && err == nil { // if the file didn't close OK...
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "unable to flush and close CSV file %v", f.name)
	}
	f.log.Debug("CSVFileOutput closed file ", f.name, " after ", f.rowCount, " rows")
	return nil
}
