package svd

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// Terminal reports whether the status is an end state.
func (ts TaskStatus) Terminal() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusFailed
}

// CanAdvance reports whether the status machine permits moving from ts
// to next. Transitions only run forward: pending -> processing ->
// {completed|failed}; submission failures may also fail a pending task
// directly.
func (ts TaskStatus) CanAdvance(next TaskStatus) bool {
	switch ts {
	case TaskStatusPending:
		return next == TaskStatusProcessing || next == TaskStatusFailed
	case TaskStatusProcessing:
		return next == TaskStatusCompleted || next == TaskStatusFailed
	default:
		return false
	}
}

type TaskKind string

const (
	TaskKindSingle TaskKind = "single"
	TaskKindBatch  TaskKind = "batch"
	TaskKindInfo   TaskKind = "info"
)

// Task tracks one background unit of work through its lifecycle. Tasks
// live only in the store; nothing persists across a restart.
type Task struct {
	ID          uuid.UUID       `json:"id"`
	Kind        TaskKind        `json:"kind"`
	Status      TaskStatus      `json:"status"`
	URLs        []string        `json:"urls"`
	Assets      AssetSelection  `json:"assets"`
	CreatedAt   time.Time       `json:"created_at"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Download    *DownloadResult `json:"download,omitempty"`
	Batch       *BatchResult    `json:"batch,omitempty"`
	Info        *MediaInfo      `json:"info,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// Clone copies the task. Result pointers are shared: results are never
// mutated after creation, so sharing them is safe.
func (t *Task) Clone() *Task {
	clone := *t
	clone.URLs = slices.Clone(t.URLs)
	return &clone
}
