package stats

import (
	"github.com/Luis23345432/Ingesta-Hotel2/logger"
	"github.com/cevaris/ordered_map"
)

type StatsFetcher interface {
	GetStats() []Stats
}

// JobStatsManager keeps one StepWatcher per job step in the order the steps were added.
type JobStatsManager struct {
	log          logger.Logger
	mapStepStats *ordered_map.OrderedMap
}

func NewJobStats(log logger.Logger) *JobStatsManager {
	return &JobStatsManager{log: log, mapStepStats: ordered_map.NewOrderedMap()}
}

// AddStepWatcher creates a StepWatcher for stepName, replacing any earlier one of the same name.
func (t *JobStatsManager) AddStepWatcher(stepName string) *StepWatcher {
	sw := NewStepWatcher(stepName)
	t.mapStepStats.Set(stepName, sw)
	return sw
}

func (t *JobStatsManager) GetStats() []Stats {
	retval := make([]Stats, 0, t.mapStepStats.Len())
	iter := t.mapStepStats.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		retval = append(retval, kv.Value.(*StepWatcher).RenderStats())
	}
	return retval
}

// LogStats writes the stats of every step at info level.
func (t *JobStatsManager) LogStats() {
	for _, s := range t.GetStats() {
		t.log.Info(s.String())
	}
}
