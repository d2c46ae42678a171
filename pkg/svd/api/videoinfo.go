package api

import (
	"context"
	"net/http"
	"time"

	"socialdl/pkg/svd"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

func (api *API) VideoInfo(
	ctx context.Context,
	input *VideoInfoInput,
) (output *VideoInfoOutput, err error) {
	task := &svd.Task{
		ID:   uuid.New(),
		Kind: svd.TaskKindInfo,
		URLs: []string{input.URL},
	}

	if err = api.Submit.Submit(ctx, task); err != nil {
		api.Logger.Error(
			"submitting info task",
			"url", input.URL,
			"err", err.Error(),
		)
		return
	}

	// probes are usually quick; wait a little so most callers get the
	// metadata inline instead of having to poll.
	output = new(VideoInfoOutput)
	deadline := time.NewTimer(api.infoWait())
	defer deadline.Stop()
	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-deadline.C:
			output.Body.Success = false
			output.Body.Message = "processing, check task status"
			output.Body.TaskID = task.ID
			return
		case <-poll.C:
			fetched, fetchErr := api.Tasks.FetchTask(ctx, task.ID)
			if fetchErr != nil {
				err = fetchErr
				return
			}
			switch fetched.Status {
			case svd.TaskStatusCompleted:
				output.Body.Success = true
				output.Body.Info = fetched.Info
				output.Body.TaskID = task.ID
				return
			case svd.TaskStatusFailed:
				output.Body.Success = false
				output.Body.Message = fetched.Error
				output.Body.TaskID = task.ID
				return
			}
		}
	}
}

type VideoInfoInput struct {
	URL string `query:"url" required:"true" format:"uri" doc:"Item URL to probe"`
}

type VideoInfoOutput struct {
	Body struct {
		Success bool           `json:"success"`
		Info    *svd.MediaInfo `json:"info,omitempty"`
		Message string         `json:"message,omitempty"`
		TaskID  uuid.UUID      `json:"task_id"`
	}
}

var OperationVideoInfo = Operation[VideoInfoInput, VideoInfoOutput]{
	Huma: huma.Operation{
		OperationID:   "video-info",
		Summary:       "Probe item metadata",
		Tags:          []string{"Download"},
		Path:          "/video-info",
		Method:        http.MethodPost,
		DefaultStatus: http.StatusOK,
		Errors: []int{
			http.StatusInternalServerError, // QueueFullErr
		},
	},
	Handler: (*API).VideoInfo,
}
