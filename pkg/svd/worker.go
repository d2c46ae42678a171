package svd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Queue carries submitted task IDs to the worker pool. Submission and
// execution communicate only through the queue and the task store.
type Queue chan uuid.UUID

func NewQueue(size int) Queue { return make(Queue, size) }

type QueueFullErr struct{}

func (err *QueueFullErr) Error() string { return "task queue is full" }

func (err *QueueFullErr) GetStatus() int {
	return http.StatusInternalServerError
}

// Submitter registers pending tasks and enqueues them for the workers.
type Submitter struct {
	Tasks TaskStore
	Queue Queue

	// Now is for tests; nil means time.Now.
	Now func() time.Time
}

func (s *Submitter) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit inserts the task as pending and hands it to the worker pool.
// If the queue is full the task is failed in place so pollers see a
// terminal state rather than a forever-pending entry.
func (s *Submitter) Submit(ctx context.Context, task *Task) error {
	task.Status = TaskStatusPending
	task.CreatedAt = s.now()

	if err := s.Tasks.CreateTask(ctx, task); err != nil {
		return fmt.Errorf("submitting task: %w", err)
	}

	select {
	case s.Queue <- task.ID:
		return nil
	default:
	}

	queueErr := &QueueFullErr{}
	completed := s.now()
	task.Status = TaskStatusFailed
	task.Error = queueErr.Error()
	task.CompletedAt = &completed
	_ = s.Tasks.UpdateTask(ctx, task)
	return fmt.Errorf("submitting task: %w", queueErr)
}

// Worker consumes the queue and drives each task through its lifecycle.
// Multiple workers may run concurrently across tasks; the work inside a
// single task stays strictly sequential.
type Worker struct {
	Tasks      TaskStore
	Queue      Queue
	Downloader *Downloader
	Batcher    *Batcher
	Logger     *slog.Logger

	// Now is for tests; nil means time.Now.
	Now func() time.Time
}

func (w *Worker) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Run consumes tasks until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	w.Logger.Info("starting worker")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-w.Queue:
			if err := w.RunTask(ctx, id); err != nil {
				if errors.Is(err, context.Canceled) ||
					errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				w.Logger.Error(
					"running task",
					"task", id,
					"err", err.Error(),
				)
			}
		}
	}
}

// RunTask executes a single queued task: advance to processing, do the
// work, record the terminal state. Download failures are terminal task
// states, not errors; the returned error covers store access only.
func (w *Worker) RunTask(ctx context.Context, id uuid.UUID) error {
	task, err := w.Tasks.FetchTask(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching task: %w", err)
	}

	started := w.now()
	task.Status = TaskStatusProcessing
	task.StartedAt = &started
	if err := w.Tasks.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("starting task: %w", err)
	}

	w.Logger.Info("processing task", "task", id, "kind", task.Kind)
	w.execute(ctx, task)

	completed := w.now()
	task.CompletedAt = &completed
	if err := w.Tasks.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("finishing task: %w", err)
	}

	w.Logger.Info("finished task", "task", id, "status", task.Status)
	return nil
}

func (w *Worker) execute(ctx context.Context, task *Task) {
	switch task.Kind {
	case TaskKindSingle:
		result := w.Downloader.DownloadSingle(ctx, DownloadRequest{
			URL:            task.URLs[0],
			AssetSelection: task.Assets,
		})
		task.Download = result
		if result.Success {
			task.Status = TaskStatusCompleted
		} else {
			task.Status = TaskStatusFailed
			task.Error = result.Error
		}
	case TaskKindBatch:
		// individual download failures are recorded inside the batch
		// result; the task itself still completes.
		task.Batch = w.Batcher.DownloadAll(ctx, task.URLs, task.Assets)
		task.Status = TaskStatusCompleted
	case TaskKindInfo:
		info, err := w.Downloader.Extractor.Probe(ctx, task.URLs[0])
		if err != nil {
			task.Status = TaskStatusFailed
			task.Error = err.Error()
			return
		}
		task.Info = info
		task.Status = TaskStatusCompleted
	default:
		task.Status = TaskStatusFailed
		task.Error = fmt.Sprintf("unknown task kind: %s", task.Kind)
	}
}
