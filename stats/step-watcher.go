package stats

import (
	"fmt"
	"time"
)

// StepWatcher captures the counters of one job step.
// Steps run one after the other so no locking is needed.
type StepWatcher struct {
	stepName  string
	startTime time.Time
	endTime   time.Time
	isRunning bool
	rows      int64
	pages     int64
	bytes     int64
}

type Stats struct {
	StepName       string `json:"stepName"`
	StatusText     string `json:"statusText"`
	StatusEmoji    string `json:"statusEmoji"`
	ElapsedTimeSec int    `json:"elapsedTimeSec"`
	TotalRows      int    `json:"totalRows"`
	TotalPages     int    `json:"totalPages,omitempty"`
	TotalBytes     int    `json:"totalBytes,omitempty"`
	RowsPerSecond  int    `json:"rowsPerSecond"`
}

func NewStepWatcher(stepName string) *StepWatcher {
	return &StepWatcher{stepName: stepName}
}

func (n *StepWatcher) StartWatching() {
	n.startTime = time.Now()
	n.endTime = time.Time{}
	n.isRunning = true
	n.rows, n.pages, n.bytes = 0, 0, 0
}

func (n *StepWatcher) StopWatching() {
	n.endTime = time.Now()
	n.isRunning = false
}

func (n *StepWatcher) AddRows(count int64) {
	n.rows += count
}

func (n *StepWatcher) AddPages(count int64) {
	n.pages += count
}

func (n *StepWatcher) AddBytes(count int64) {
	n.bytes += count
}

// RenderStats gets a struct filled with stats at the point of time it is called.
func (n *StepWatcher) RenderStats() Stats {
	var statusText, statusEmoji string
	end := n.endTime
	if n.isRunning {
		statusText = "running"
		statusEmoji = "\U0000231B" // hour glass
		end = time.Now()
	} else {
		statusText = "complete"
		statusEmoji = "\U00002705" // green tick
	}
	elapsed := end.Sub(n.startTime)
	if n.startTime.IsZero() {
		elapsed = 0
	}
	return Stats{
		StepName:       n.stepName,
		StatusText:     statusText,
		StatusEmoji:    statusEmoji,
		ElapsedTimeSec: int(elapsed.Seconds()),
		TotalRows:      int(n.rows),
		TotalPages:     int(n.pages),
		TotalBytes:     int(n.bytes),
		RowsPerSecond:  int(n.rows / getNumSecondsOrOne(elapsed)),
	}
}

// String will format the stats for general logging.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats for %v %v %v "+
			"elapsedTimeSec=%v "+
			"totalRows=%v "+
			"totalPages=%v "+
			"totalBytes=%v "+
			"rowsPerSecond=%v",
		s.StepName, s.StatusText, s.StatusEmoji,
		s.ElapsedTimeSec,
		s.TotalRows,
		s.TotalPages,
		s.TotalBytes,
		s.RowsPerSecond)
}

func getNumSecondsOrOne(d time.Duration) (seconds int64) {
	seconds = int64(d.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return
}
