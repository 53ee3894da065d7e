package components

import (
	"context"

	"github.com/Luis23345432/Ingesta-Hotel2/aws/dynamodb"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/Luis23345432/Ingesta-Hotel2/stats"
	"github.com/Luis23345432/Ingesta-Hotel2/stream"
)

type TableScannerConfig struct {
	Log         logger.Logger
	Name        string
	Source      dynamodb.PageScanner
	TableName   string
	PageSize    int64 // page size hint; 0 lets the source decide.
	StepWatcher *stats.StepWatcher
}

// TableScanner reads every record of a table, one page at a time, in the order the source returns them.
// It is a single pass iterator: once Next returns false it stays false.
//
//	for s.Next(ctx) {
//		rec := s.Record()
//	}
//	if err := s.Err(); err != nil {
//	}
type TableScanner struct {
	cfg     *TableScannerConfig
	page    []stream.Record
	pageIdx int
	cursor  dynamodb.Cursor
	rec     stream.Record
	started bool
	done    bool
	err     error
	pages   int64
	count   int64
}

func NewTableScanner(cfg *TableScannerConfig) *TableScanner {
	if cfg.Source == nil {
		cfg.Log.Panic(cfg.Name, " error - missing page source.")
	}
	if cfg.TableName == "" {
		cfg.Log.Panic(cfg.Name, " error - missing table name.")
	}
	return &TableScanner{cfg: cfg, rec: stream.NewNilRecord()}
}

// Next advances to the next record, fetching the next page when the current one is used up.
// It returns false when the table is exhausted or a page could not be read; see Err.
func (s *TableScanner) Next(ctx context.Context) bool {
	for {
		if s.pageIdx < len(s.page) { // if the current page has records left...
			s.rec = s.page[s.pageIdx]
			s.page[s.pageIdx] = stream.NewNilRecord() // release the record once handed out.
			s.pageIdx++
			s.count++
			return true
		}
		if s.done {
			return false
		}
		if s.started && s.cursor == nil { // if the source reported no further pages...
			s.finish()
			return false
		}
		if !s.started {
			s.cfg.Log.Info(s.cfg.Name, " is running")
			s.started = true
		}
		p, err := s.cfg.Source.ScanPage(ctx, s.cfg.TableName, s.cursor, s.cfg.PageSize)
		if err != nil {
			s.err = &SourceUnavailableError{Table: s.cfg.TableName, Err: err}
			s.cfg.Log.Error(s.cfg.Name, " error reading page ", s.pages+1, ": ", err)
			s.done = true
			s.rec = stream.NewNilRecord()
			return false
		}
		s.pages++
		if s.cfg.StepWatcher != nil {
			s.cfg.StepWatcher.AddPages(1)
			s.cfg.StepWatcher.AddRows(int64(len(p.Records)))
		}
		s.cfg.Log.Debug(s.cfg.Name, " fetched page ", s.pages, " with ", len(p.Records), " records")
		s.page, s.pageIdx, s.cursor = p.Records, 0, p.Cursor
		if len(p.Records) == 0 { // if the page is empty...
			s.finish()
			return false
		}
	}
}

func (s *TableScanner) finish() {
	s.done = true
	s.rec = stream.NewNilRecord()
	s.cfg.Log.Info(s.cfg.Name, " complete: ", s.count, " records in ", s.pages, " pages")
}

// Record returns the record loaded by the last successful call to Next.
func (s *TableScanner) Record() stream.Record {
	return s.rec
}

// Err returns the error that stopped the scan, if any.
func (s *TableScanner) Err() error {
	return s.err
}

// Pages returns the number of pages fetched so far.
func (s *TableScanner) Pages() int64 {
	return s.pages
}

// Count returns the number of records yielded so far.
func (s *TableScanner) Count() int64 {
	return s.count
}
