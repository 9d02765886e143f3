package scheduler

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/marketmood/moodscope/pkg/store"
)

// WeeklyJob drives the daily pipeline across the trailing 7-day window.
// Each day offset maps 1:1 onto a slot index (offset mod 7), so a run is
// idempotent per slot and safe to repeat.
type WeeklyJob struct {
	pipeline *Pipeline
}

// NewWeeklyJob creates the weekly aggregation job
func NewWeeklyJob(pipeline *Pipeline) *WeeklyJob {
	return &WeeklyJob{pipeline: pipeline}
}

// RunOnce analyzes each of the last 7 days, newest first. Days are
// independent: a failed day is logged and the loop continues, so no error
// escapes the run.
func (j *WeeklyJob) RunOnce(ctx context.Context, now time.Time) {
	started := time.Now()
	lgr.Printf("[INFO] weekly aggregation started for %s", now.Format("2006-01-02"))

	for offset := 0; offset < store.Slots; offset++ {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] weekly aggregation canceled at offset %d", offset)
			return
		}

		targetDay := now.AddDate(0, 0, -offset)
		slot := offset % store.Slots

		if _, err := j.pipeline.AnalyzeDay(ctx, targetDay, slot); err != nil {
			// the slot keeps its previous contents, later days still run
			lgr.Printf("[ERROR] day %s (slot %d) failed: %v", targetDay.Format("2006-01-02"), slot, err)
			continue
		}
	}

	lgr.Printf("[INFO] weekly aggregation completed in %v", time.Since(started).Round(time.Millisecond))
}
