package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"student-data-processor/internal/progress"
)

// estimateInterval is the reporting stride used when the total is only
// an estimate and a percentage stride cannot be computed up front.
const estimateInterval = 2000

// RunOptions tunes a pipeline run.
type RunOptions struct {
	// ScoreOffset is added to every record's score as it passes through.
	ScoreOffset int
	// Total is the exact number of records the source will yield, when
	// known. Drives the progress percentage.
	Total int64
	// TotalEstimate stands in for Total when the source cannot be
	// counted up front. The completion snapshot reports the true count.
	TotalEstimate int64
	// CleanupFiles are removed when the run finishes, success or not.
	// Used for staged upload temp files.
	CleanupFiles []string
}

// Run drains src into sink, publishing progress snapshots to reg under
// taskID along the way. The first snapshot lands before the first
// record so pollers never observe NOT_FOUND after dispatch. On any
// error the sink is aborted, never closed, so partial output is
// discarded rather than flushed.
func Run(ctx context.Context, reg *progress.Registry, taskID string, src Source, sink Sink, opts RunOptions) {
	startedAt := time.Now()
	defer func() {
		for _, f := range opts.CleanupFiles {
			os.Remove(f)
		}
	}()

	total := opts.Total
	interval := int64(estimateInterval)
	if total > 0 {
		if interval = total / 100; interval < 1 {
			interval = 1
		}
	} else {
		total = opts.TotalEstimate
	}

	reg.Record(progress.Running(taskID, 0, total, startedAt))
	fmt.Printf("🚀 Task %s started\n", taskID)

	var count int64
	for {
		if err := ctx.Err(); err != nil {
			fail(reg, taskID, src, sink, err)
			return
		}

		rec, err := src.Next()
		if err != nil {
			if isEOF(err) {
				break
			}
			fail(reg, taskID, src, sink, err)
			return
		}

		rec.Score += opts.ScoreOffset
		if err := sink.Write(rec); err != nil {
			fail(reg, taskID, src, sink, err)
			return
		}

		count++
		if count%interval == 0 {
			reg.Record(progress.Running(taskID, count, total, startedAt))
		}
	}

	location, err := sink.Close()
	if cerr := src.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		reg.Record(progress.Failed(taskID, err.Error()))
		fmt.Printf("❌ Task %s failed: %v\n", taskID, err)
		return
	}

	reg.Record(progress.Completed(taskID, count, startedAt, location))
	fmt.Printf("✅ Task %s completed: %d records in %v\n", taskID, count, time.Since(startedAt).Round(time.Millisecond))
}

func fail(reg *progress.Registry, taskID string, src Source, sink Sink, err error) {
	sink.Abort()
	src.Close()
	reg.Record(progress.Failed(taskID, err.Error()))
	fmt.Printf("❌ Task %s failed: %v\n", taskID, err)
}
