package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (api *API) Health(
	ctx context.Context,
	input *HealthInput,
) (output *HealthOutput, err error) {
	output = new(HealthOutput)
	output.Body.Status = "healthy"
	output.Body.Timestamp = time.Now()
	output.Body.DownloadDir = api.Root
	return
}

type HealthInput struct{}

type HealthOutput struct {
	Body struct {
		Status      string    `json:"status"`
		Timestamp   time.Time `json:"timestamp"`
		DownloadDir string    `json:"download_dir"`
	}
}

var OperationHealth = Operation[HealthInput, HealthOutput]{
	Huma: huma.Operation{
		OperationID:   "health",
		Summary:       "Health check",
		Tags:          []string{"Meta"},
		Path:          "/health",
		Method:        http.MethodGet,
		DefaultStatus: http.StatusOK,
	},
	Handler: (*API).Health,
}
