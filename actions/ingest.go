package actions

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Luis23345432/Ingesta-Hotel2/components"
	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/Luis23345432/Ingesta-Hotel2/stats"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// ingestJob carries the state of one run of RunIngest.
type ingestJob struct {
	jc     *JobContext
	log    *logger.LoggerImpl
	stats  *stats.JobStatsManager
	result *JobResult
}

// RunIngest exports the entity table of jc to a CSV file, uploads the file and registers it in the catalog.
// The steps run in order and the first failure aborts the job:
//
//	EnsureCatalogDatabase > ExportToFile > UploadFile > RegisterCatalogTable > Done
//
// An existing catalog table is not a failure.
func RunIngest(ctx context.Context, jc *JobContext) (JobResult, error) {
	if err := helper.ValidateStructIsPopulated(jc); err != nil {
		return JobResult{}, err
	}
	if err := jc.Spec.Validate(); err != nil {
		return JobResult{}, err
	}
	runID := xid.New().String()
	log := jc.Log.WithFields(map[string]interface{}{
		"entity": jc.Spec.Name,
		"stage":  jc.Stage,
		"run":    runID,
	})
	bucket := strings.TrimPrefix(jc.Bucket, "s3://")
	j := &ingestJob{
		jc:    jc,
		log:   log,
		stats: stats.NewJobStats(log),
		result: &JobResult{
			Entity:      jc.Spec.Name,
			Stage:       jc.Stage,
			RunID:       runID,
			SourceTable: jc.Spec.SourceTable(jc.Stage),
			FileName:    filepath.Join(jc.OutputDir, jc.Spec.FileName(jc.Stage)),
			Location:    jc.Spec.Location(bucket),
			Database:    entity.GlueDatabase(jc.Stage),
			Table:       jc.Spec.GlueTable(jc.Stage),
		},
	}
	steps := map[JobState]func(context.Context) error{
		StateEnsureCatalogDatabase: j.ensureCatalogDatabase,
		StateExportToFile:          j.exportToFile,
		StateUploadFile:            j.uploadFile,
		StateRegisterCatalogTable:  j.registerCatalogTable,
	}
	start := time.Now()
	log.Info("ingest of table ", j.result.SourceTable, " started")
	var retErr error
	state := StateEnsureCatalogDatabase
	for state != StateDone && state != StateAborted {
		j.result.History = append(j.result.History, state)
		log.Info("step ", state, " started")
		if err := steps[state](ctx); err != nil {
			log.Error("step ", state, " failed: ", err)
			j.result.FailedStep = state
			retErr = errors.Wrapf(err, "%v job aborted in step %v", jc.Spec.Name, state)
			state = StateAborted
			continue
		}
		log.Info("step ", state, " succeeded")
		state = nextState(state)
	}
	j.result.History = append(j.result.History, state)
	j.result.State = state
	j.result.Elapsed = time.Since(start)
	j.result.Stats = j.stats.GetStats()
	j.stats.LogStats()
	if state == StateDone {
		log.Info("ingest complete: ", j.result.RecordsScanned, " records scanned, ", j.result.RowsWritten,
			" rows written to ", j.result.Location, " in ", j.result.Elapsed.Round(time.Millisecond))
	} else {
		log.Error("ingest aborted after ", j.result.Elapsed.Round(time.Millisecond), ": ", j.result)
	}
	return *j.result, retErr
}

func nextState(s JobState) JobState {
	switch s {
	case StateEnsureCatalogDatabase:
		return StateExportToFile
	case StateExportToFile:
		return StateUploadFile
	case StateUploadFile:
		return StateRegisterCatalogTable
	default:
		return StateDone
	}
}

func (j *ingestJob) ensureCatalogDatabase(ctx context.Context) error {
	o, err := components.EnsureGlueDatabase(ctx, &components.GlueDatabaseConfig{
		Log:          j.log,
		Name:         StateEnsureCatalogDatabase.String(),
		Catalog:      j.jc.Clients.Catalog,
		DatabaseName: j.result.Database,
		Description:  j.jc.Spec.DatabaseDescription,
	})
	if err != nil {
		return err
	}
	j.result.DatabaseOutcome = o.String()
	return nil
}

// exportToFile scans the whole source table into the output file.
// A partial file is removed when the export fails.
func (j *ingestJob) exportToFile(ctx context.Context) (err error) {
	scanWatcher := j.stats.AddStepWatcher("ScanTable")
	writeWatcher := j.stats.AddStepWatcher("WriteFile")
	scanWatcher.StartWatching()
	writeWatcher.StartWatching()
	defer scanWatcher.StopWatching()
	defer writeWatcher.StopWatching()
	w, err := components.NewCsvFileWriter(&components.CsvFileWriterConfig{
		Log:         j.log,
		Name:        "CsvFileWriter",
		OutputDir:   j.jc.OutputDir,
		FileName:    j.jc.Spec.FileName(j.jc.Stage),
		StepWatcher: writeWatcher,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close() // no-op after Complete.
		if err != nil {
			if rmErr := os.Remove(w.Path()); rmErr != nil && !os.IsNotExist(rmErr) {
				j.log.Warn("unable to remove partial file '", w.Path(), "': ", rmErr)
			}
		}
	}()
	scanner := components.NewTableScanner(&components.TableScannerConfig{
		Log:         j.log,
		Name:        "TableScanner",
		Source:      j.jc.Clients.Source,
		TableName:   j.result.SourceTable,
		PageSize:    j.jc.PageSize,
		StepWatcher: scanWatcher,
	})
	for scanner.Next(ctx) {
		if err = w.WriteRows(components.ProjectRecord(scanner.Record(), j.jc.Spec)); err != nil {
			return err
		}
	}
	j.result.RecordsScanned = scanner.Count()
	j.result.Pages = scanner.Pages()
	if err = scanner.Err(); err != nil {
		return err
	}
	if err = w.Complete(); err != nil {
		return err
	}
	j.result.FileName = w.Path()
	j.result.RowsWritten = w.RowCount()
	return nil
}

func (j *ingestJob) uploadFile(ctx context.Context) error {
	sw := j.stats.AddStepWatcher(StateUploadFile.String())
	sw.StartWatching()
	defer sw.StopWatching()
	_, err := components.CopyFileToS3(ctx, &components.CopyFileToS3Config{
		Log:         j.log,
		Name:        "CopyFileToS3",
		Uploader:    j.jc.Clients.Uploader,
		FileName:    j.result.FileName,
		BucketName:  j.jc.Bucket,
		Key:         j.jc.Spec.ObjectKey(j.jc.Stage),
		StepWatcher: sw,
	})
	return err
}

func (j *ingestJob) registerCatalogTable(ctx context.Context) error {
	o, err := components.RegisterGlueTable(ctx, &components.GlueTableConfig{
		Log:          j.log,
		Name:         StateRegisterCatalogTable.String(),
		Catalog:      j.jc.Clients.Catalog,
		DatabaseName: j.result.Database,
		TableName:    j.result.Table,
		Location:     j.result.Location,
		Columns:      j.jc.Spec.CatalogColumns(),
	})
	if err != nil {
		return err
	}
	j.result.TableOutcome = o.String()
	return nil
}
