package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"socialdl/pkg/svd"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/google/uuid"
)

type API struct {
	Tasks  svd.TaskStore
	Submit *svd.Submitter
	Root   string
	Logger *slog.Logger

	// InfoWait bounds how long /video-info waits for the probe task to
	// finish before returning a "still processing" indicator. Zero
	// means 2 seconds.
	InfoWait time.Duration
}

func (api *API) Run(ctx context.Context, addr string) error {
	server := http.Server{Addr: addr, Handler: api.Handler()}

	done := make(chan struct{})

	go func() {
		if e := server.ListenAndServe(); !errors.Is(e, http.ErrServerClosed) {
			api.Logger.Error("serving http", "err", e.Error())
		}
		api.Logger.Info("http server shutdown")
		done <- struct{}{}
	}()

	// wait for the server to die or the context to be canceled;
	// cancellation gives in-flight requests a bounded grace period to
	// drain.
	select {
	case <-ctx.Done():
		sdc, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sdc); err != nil &&
			!errors.Is(err, context.Canceled) &&
			!errors.Is(err, context.DeadlineExceeded) {

			return fmt.Errorf("running api: shutting down http server: %w", err)
		}
	case <-done:
	}
	return nil
}

func (api *API) Handler() http.Handler {
	var mux http.ServeMux
	config := huma.DefaultConfig("socialdl", "v1.0.0")
	registry := Registry{API: api, Huma: humago.New(&mux, config)}
	OperationDownloadCreate.Register(&registry)
	OperationBatchCreate.Register(&registry)
	OperationTaskFetch.Register(&registry)
	OperationTaskDelete.Register(&registry)
	OperationTaskList.Register(&registry)
	OperationVideoInfo.Register(&registry)
	OperationHealth.Register(&registry)

	// file streaming and the index stay plain handlers: huma's typed
	// bodies don't buy anything for an octet-stream endpoint, and a
	// huma route at `/` would swallow every unmatched GET instead of
	// matching the bare root only.
	mux.HandleFunc("GET /files/{date}/{folder}/{filename}", api.FetchFile)
	mux.HandleFunc("GET /{$}", api.Index)
	return &mux
}

type Registry struct {
	API  *API
	Huma huma.API
}

type Operation[I, O any] struct {
	Huma    huma.Operation
	Handler func(api *API, ctx context.Context, input *I) (*O, error)
}

func (op Operation[I, O]) Register(r *Registry) {
	huma.Register(r.Huma, op.Huma, func(ctx context.Context, i *I) (*O, error) {
		return op.Handler(r.API, ctx, i)
	})
}

// TaskAccepted acknowledges a submission. The outcome is never part of
// the submission response; clients poll the task endpoints.
type TaskAccepted struct {
	TaskID  uuid.UUID      `json:"task_id"`
	Status  svd.TaskStatus `json:"status"`
	Message string         `json:"message"`
}

func (api *API) infoWait() time.Duration {
	if api.InfoWait > 0 {
		return api.InfoWait
	}
	return 2 * time.Second
}
