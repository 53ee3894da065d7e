package components

import (
	"path/filepath"

	f "github.com/Luis23345432/Ingesta-Hotel2/file"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	s "github.com/Luis23345432/Ingesta-Hotel2/stats"
)

type CsvFileWriterConfig struct {
	Log         logger.Logger
	Name        string
	OutputDir   string // directory of the output file; empty for the working directory.
	FileName    string // base name of the output file.
	StepWatcher *s.StepWatcher
}

// CsvFileWriter appends projected rows to a new delimited text file, in the order given.
type CsvFileWriter struct {
	cfg *CsvFileWriterConfig
	fi  *f.CSVFileOutput
}

// NewCsvFileWriter creates or truncates the output file.
// The caller must Close the writer on every path.
func NewCsvFileWriter(cfg *CsvFileWriterConfig) (*CsvFileWriter, error) {
	if cfg.FileName == "" {
		cfg.Log.Panic(cfg.Name, " error - missing file name.")
	}
	path := filepath.Join(cfg.OutputDir, cfg.FileName)
	cfg.Log.Debug(cfg.Name, " starting NewCSVFileOutput with config: path=", path)
	fi, err := f.NewCSVFileOutput(cfg.Log, path)
	if err != nil {
		return nil, &FileIOError{Path: path, Err: err}
	}
	cfg.Log.Info(cfg.Name, " is running")
	return &CsvFileWriter{cfg: cfg, fi: fi}, nil
}

// WriteRows writes each row as one record.
func (w *CsvFileWriter) WriteRows(rows [][]string) error {
	for _, row := range rows {
		if err := w.fi.WriteRecord(row); err != nil {
			return &FileIOError{Path: w.fi.Name(), Err: err}
		}
		if w.cfg.StepWatcher != nil {
			w.cfg.StepWatcher.AddRows(1)
		}
	}
	return nil
}

// Close flushes and closes the file. It is safe to call more than once.
func (w *CsvFileWriter) Close() error {
	if err := w.fi.Close(); err != nil {
		return &FileIOError{Path: w.fi.Name(), Err: err}
	}
	return nil
}

// Complete closes the file and logs the outcome.
func (w *CsvFileWriter) Complete() error {
	if err := w.Close(); err != nil {
		return err
	}
	w.cfg.Log.Info(w.cfg.Name, " complete: wrote ", w.fi.RowCount(), " rows to '", w.fi.Name(), "'")
	return nil
}

// Path returns the path of the output file.
func (w *CsvFileWriter) Path() string {
	return w.fi.Name()
}

func (w *CsvFileWriter) RowCount() int64 {
	return w.fi.RowCount()
}
