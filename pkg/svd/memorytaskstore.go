package svd

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryTaskStore keeps tasks in a mutex-guarded map. It hands out
// copies, so callers can't mutate store state behind the lock's back.
type MemoryTaskStore struct {
	lock  sync.RWMutex
	tasks map[uuid.UUID]*Task
}

var _ TaskStore = (*MemoryTaskStore)(nil)

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: map[uuid.UUID]*Task{}}
}

func (store *MemoryTaskStore) CreateTask(
	ctx context.Context,
	task *Task,
) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	if _, exists := store.tasks[task.ID]; exists {
		return fmt.Errorf("creating task: %w", &TaskExistsErr{ID: task.ID})
	}

	store.tasks[task.ID] = task.Clone()
	return nil
}

func (store *MemoryTaskStore) FetchTask(
	ctx context.Context,
	id uuid.UUID,
) (*Task, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	task, exists := store.tasks[id]
	if !exists {
		return nil, fmt.Errorf("fetching task: %w", &TaskNotFoundErr{ID: id})
	}
	return task.Clone(), nil
}

func (store *MemoryTaskStore) UpdateTask(
	ctx context.Context,
	task *Task,
) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	current, exists := store.tasks[task.ID]
	if !exists {
		return fmt.Errorf(
			"updating task: %w",
			&TaskNotFoundErr{ID: task.ID},
		)
	}

	if current.Status != task.Status && !current.Status.CanAdvance(task.Status) {
		return fmt.Errorf(
			"updating task: %w",
			&TaskTransitionErr{
				ID:   task.ID,
				From: current.Status,
				To:   task.Status,
			},
		)
	}

	store.tasks[task.ID] = task.Clone()
	return nil
}

func (store *MemoryTaskStore) DeleteTask(
	ctx context.Context,
	id uuid.UUID,
) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	if _, exists := store.tasks[id]; !exists {
		return fmt.Errorf("deleting task: %w", &TaskNotFoundErr{ID: id})
	}

	delete(store.tasks, id)
	return nil
}

func (store *MemoryTaskStore) ListTasks(
	ctx context.Context,
) (tasks []Task, err error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	tasks = make([]Task, 0, len(store.tasks))
	for _, task := range store.tasks {
		tasks = append(tasks, *task.Clone())
	}
	return
}
