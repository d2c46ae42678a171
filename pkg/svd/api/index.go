package api

import (
	"encoding/json"
	"net/http"
)

// Index serves a short service description with the endpoint listing,
// so hitting the bare root is self-documenting.
func (api *API) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		Name      string            `json:"name"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}{
		Name:    "socialdl",
		Version: "v1.0.0",
		Endpoints: map[string]string{
			"GET /":                                 "API information",
			"GET /health":                           "Health check",
			"POST /download":                        "Download single item",
			"POST /download/batch":                  "Download multiple items",
			"GET /task/{task_id}":                   "Check task status",
			"DELETE /task/{task_id}":                "Delete task record",
			"GET /tasks":                            "List tasks",
			"POST /video-info":                      "Probe item metadata",
			"GET /files/{date}/{folder}/{filename}": "Download file",
		},
	}); err != nil {
		api.Logger.Error("encoding index", "err", err.Error())
	}
}
