package actions

import (
	"context"
	"time"

	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"go.uber.org/multierr"
)

// RunAll runs one job per spec, one after the other, using base for everything but the spec.
// A failed job does not stop the ones after it; the returned error combines every failure.
func RunAll(ctx context.Context, base JobContext, specs []entity.Spec) ([]JobResult, error) {
	start := time.Now()
	results := make([]JobResult, 0, len(specs))
	var errs error
	failed := 0
	for _, spec := range specs {
		jc := base
		jc.Spec = spec
		res, err := RunIngest(ctx, &jc)
		if err != nil {
			failed++
			errs = multierr.Append(errs, err)
			if res.Entity == "" { // if the job never started...
				res = JobResult{Entity: spec.Name, Stage: jc.Stage, State: StateAborted, History: []JobState{StateAborted}}
			}
		}
		results = append(results, res)
	}
	if base.Log != nil {
		base.Log.Info("ingest of ", len(specs), " entities finished in ", time.Since(start).Round(time.Millisecond),
			": ", len(specs)-failed, " succeeded, ", failed, " failed")
	}
	return results, errs
}
