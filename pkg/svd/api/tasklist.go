package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"socialdl/pkg/svd"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

func (api *API) TaskList(
	ctx context.Context,
	input *TaskListInput,
) (output *TaskListOutput, err error) {
	tasks, err := api.Tasks.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := tasks
	if input.Status != "" {
		filtered = nil
		for i := range tasks {
			if tasks[i].Status == svd.TaskStatus(input.Status) {
				filtered = append(filtered, tasks[i])
			}
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return sortTime(&filtered[i]).After(sortTime(&filtered[j]))
	})

	if len(filtered) > input.Limit {
		filtered = filtered[:input.Limit]
	}

	output = new(TaskListOutput)
	output.Body.Total = len(tasks)
	output.Body.Filtered = len(filtered)
	output.Body.Tasks = make([]TaskSummary, len(filtered))
	for i := range filtered {
		output.Body.Tasks[i] = TaskSummary{
			TaskID:      filtered[i].ID,
			Kind:        filtered[i].Kind,
			Status:      filtered[i].Status,
			CreatedAt:   filtered[i].CreatedAt,
			StartedAt:   filtered[i].StartedAt,
			CompletedAt: filtered[i].CompletedAt,
			URLs:        filtered[i].URLs,
		}
	}
	return
}

// sortTime orders the listing: creation time when known, otherwise
// start time.
func sortTime(task *svd.Task) time.Time {
	if task.CreatedAt.IsZero() && task.StartedAt != nil {
		return *task.StartedAt
	}
	return task.CreatedAt
}

type TaskListInput struct {
	Status string `query:"status" required:"false" doc:"Filter by status"`
	Limit  int    `query:"limit" default:"10" minimum:"1" maximum:"100"`
}

type TaskSummary struct {
	TaskID      uuid.UUID      `json:"task_id"`
	Kind        svd.TaskKind   `json:"kind"`
	Status      svd.TaskStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	URLs        []string       `json:"urls"`
}

type TaskListOutput struct {
	Body struct {
		Total    int           `json:"total"`
		Filtered int           `json:"filtered"`
		Tasks    []TaskSummary `json:"tasks"`
	}
}

var OperationTaskList = Operation[TaskListInput, TaskListOutput]{
	Huma: huma.Operation{
		OperationID:   "task-list",
		Summary:       "List tasks",
		Tags:          []string{"Task"},
		Path:          "/tasks",
		Method:        http.MethodGet,
		DefaultStatus: http.StatusOK,
	},
	Handler: (*API).TaskList,
}
