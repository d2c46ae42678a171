package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

func (api *API) TaskDelete(
	ctx context.Context,
	input *TaskDeleteInput,
) (output *TaskDeleteOutput, err error) {
	id, err := uuid.Parse(input.TaskID)
	if err != nil {
		return nil, huma.Error404NotFound("task not found: " + input.TaskID)
	}

	// deletion is permanent: a second delete for the same id reports
	// not-found.
	if err = api.Tasks.DeleteTask(ctx, id); err != nil {
		return nil, err
	}

	output = new(TaskDeleteOutput)
	output.Body.Success = true
	output.Body.Message = fmt.Sprintf("task %s deleted", id)
	return
}

type TaskDeleteInput struct {
	TaskID string `path:"task_id"`
}

type TaskDeleteOutput struct {
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
}

var OperationTaskDelete = Operation[TaskDeleteInput, TaskDeleteOutput]{
	Huma: huma.Operation{
		OperationID:   "task-delete",
		Summary:       "Delete task",
		Tags:          []string{"Task"},
		Path:          "/task/{task_id}",
		Method:        http.MethodDelete,
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusNotFound}, // TaskNotFoundErr
	},
	Handler: (*API).TaskDelete,
}
