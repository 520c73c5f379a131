package progress

import "time"

// Status is the observable lifecycle state of a task.
type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusNotFound  Status = "NOT_FOUND"
)

// Terminal reports whether no further updates are accepted for this status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Snapshot is the immutable progress state recorded for a task. Every
// update replaces the whole value, so readers never observe a torn write.
type Snapshot struct {
	TaskID         string  `json:"taskId"`
	Status         Status  `json:"status"`
	CurrentRecords int64   `json:"currentRecords"`
	TotalRecords   int64   `json:"totalRecords"`
	Percent        float64 `json:"progressPercentage"`
	ElapsedMillis  int64   `json:"timeTakenMillis"`
	Message        string  `json:"message,omitempty"`
	ResultLocation string  `json:"filePath,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// Running builds the snapshot for an in-flight task. total may be an
// estimate; the percentage is capped at 100 so an undershooting estimate
// never reports backwards-looking progress.
func Running(taskID string, current, total int64, startedAt time.Time) Snapshot {
	return Snapshot{
		TaskID:         taskID,
		Status:         StatusRunning,
		CurrentRecords: current,
		TotalRecords:   total,
		Percent:        percent(current, total),
		ElapsedMillis:  time.Since(startedAt).Milliseconds(),
	}
}

// Completed builds the terminal success snapshot. total is the true
// processed count, correcting any estimate used while running.
func Completed(taskID string, total int64, startedAt time.Time, resultLocation string) Snapshot {
	return Snapshot{
		TaskID:         taskID,
		Status:         StatusCompleted,
		CurrentRecords: total,
		TotalRecords:   total,
		Percent:        100,
		ElapsedMillis:  time.Since(startedAt).Milliseconds(),
		Message:        "Process completed successfully",
		ResultLocation: resultLocation,
	}
}

// Failed builds the terminal failure snapshot.
func Failed(taskID string, errDetail string) Snapshot {
	return Snapshot{
		TaskID:  taskID,
		Status:  StatusFailed,
		Message: "Process failed",
		Error:   errDetail,
	}
}

// NotFound is returned for an unknown or evicted task identifier.
func NotFound(taskID string) Snapshot {
	return Snapshot{
		TaskID:  taskID,
		Status:  StatusNotFound,
		Message: "Task not found",
	}
}

func percent(current, total int64) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(current) / float64(total) * 100
	if p > 100 {
		return 100
	}
	return p
}
