package api

import (
	"context"
	"fmt"
	"net/http"

	"socialdl/pkg/svd"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

func (api *API) DownloadCreate(
	ctx context.Context,
	input *DownloadCreateInput,
) (output *DownloadCreateOutput, err error) {
	task := &svd.Task{
		ID:   uuid.New(),
		Kind: svd.TaskKindSingle,
		URLs: []string{input.Body.URL},
		Assets: svd.AssetSelection{
			Video:     input.Body.Video,
			Audio:     input.Body.Audio,
			Subtitles: input.Body.Subtitles,
		},
	}

	if err = api.Submit.Submit(ctx, task); err != nil {
		api.Logger.Error(
			"submitting download task",
			"url", input.Body.URL,
			"err", err.Error(),
		)
		return
	}

	api.Logger.Info(
		"submitted download task",
		"task", task.ID,
		"url", input.Body.URL,
	)

	output = new(DownloadCreateOutput)
	output.Body = TaskAccepted{
		TaskID: task.ID,
		Status: svd.TaskStatusPending,
		Message: fmt.Sprintf(
			"download task created for %s",
			input.Body.URL,
		),
	}
	return
}

type DownloadCreateInput struct {
	Body struct {
		URL       string `json:"url" format:"uri" doc:"Item URL to download"`
		Video     bool   `json:"video,omitempty" default:"true"`
		Audio     bool   `json:"audio,omitempty" default:"true"`
		Subtitles bool   `json:"subtitles,omitempty" default:"true"`
	}
}

type DownloadCreateOutput struct {
	Body TaskAccepted
}

var OperationDownloadCreate = Operation[DownloadCreateInput, DownloadCreateOutput]{
	Huma: huma.Operation{
		OperationID:   "download-create",
		Summary:       "Download single item",
		Tags:          []string{"Download"},
		Path:          "/download",
		Method:        http.MethodPost,
		DefaultStatus: http.StatusAccepted,
		Errors: []int{
			http.StatusInternalServerError, // QueueFullErr
		},
	},
	Handler: (*API).DownloadCreate,
}
