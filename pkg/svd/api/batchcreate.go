package api

import (
	"context"
	"fmt"
	"net/http"

	"socialdl/pkg/svd"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

func (api *API) BatchCreate(
	ctx context.Context,
	input *BatchCreateInput,
) (output *BatchCreateOutput, err error) {
	task := &svd.Task{
		ID:   uuid.New(),
		Kind: svd.TaskKindBatch,
		URLs: input.Body.URLs,
		Assets: svd.AssetSelection{
			Video:     input.Body.Video,
			Audio:     input.Body.Audio,
			Subtitles: input.Body.Subtitles,
		},
	}

	if err = api.Submit.Submit(ctx, task); err != nil {
		api.Logger.Error(
			"submitting batch task",
			"urls", len(input.Body.URLs),
			"err", err.Error(),
		)
		return
	}

	api.Logger.Info(
		"submitted batch task",
		"task", task.ID,
		"urls", len(input.Body.URLs),
	)

	output = new(BatchCreateOutput)
	output.Body = TaskAccepted{
		TaskID: task.ID,
		Status: svd.TaskStatusPending,
		Message: fmt.Sprintf(
			"batch download task created for %d URLs",
			len(input.Body.URLs),
		),
	}
	return
}

type BatchCreateInput struct {
	Body struct {
		URLs      []string `json:"urls" minItems:"1" doc:"Item URLs to download"`
		Video     bool     `json:"video,omitempty" default:"true"`
		Audio     bool     `json:"audio,omitempty" default:"true"`
		Subtitles bool     `json:"subtitles,omitempty" default:"true"`
	}
}

type BatchCreateOutput struct {
	Body TaskAccepted
}

var OperationBatchCreate = Operation[BatchCreateInput, BatchCreateOutput]{
	Huma: huma.Operation{
		OperationID:   "download-batch-create",
		Summary:       "Download multiple items",
		Tags:          []string{"Download"},
		Path:          "/download/batch",
		Method:        http.MethodPost,
		DefaultStatus: http.StatusAccepted,
		Errors: []int{
			http.StatusInternalServerError, // QueueFullErr
		},
	},
	Handler: (*API).BatchCreate,
}
