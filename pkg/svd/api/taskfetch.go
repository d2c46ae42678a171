package api

import (
	"context"
	"net/http"

	"socialdl/pkg/svd"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

func (api *API) TaskFetch(
	ctx context.Context,
	input *TaskFetchInput,
) (output *TaskFetchOutput, err error) {
	id, err := uuid.Parse(input.TaskID)
	if err != nil {
		// unknown ids and malformed ids look the same to clients
		return nil, huma.Error404NotFound("task not found: " + input.TaskID)
	}

	task, err := api.Tasks.FetchTask(ctx, id)
	if err != nil {
		return nil, err
	}

	output = new(TaskFetchOutput)
	output.Body.Task = *task
	return
}

type TaskFetchInput struct {
	TaskID string `path:"task_id"`
}

type TaskFetchOutput struct {
	Body struct {
		Task svd.Task `json:"task"`
	}
}

var OperationTaskFetch = Operation[TaskFetchInput, TaskFetchOutput]{
	Huma: huma.Operation{
		OperationID:   "task-fetch",
		Summary:       "Fetch task",
		Tags:          []string{"Task"},
		Path:          "/task/{task_id}",
		Method:        http.MethodGet,
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusNotFound}, // TaskNotFoundErr
	},
	Handler: (*API).TaskFetch,
}
