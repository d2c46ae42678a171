package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FetchFile streams a file from the dated output directory. The
// requested path is canonicalized and prefix-checked against the
// download root before any filesystem access, so traversal segments can
// never escape it.
func (api *API) FetchFile(w http.ResponseWriter, r *http.Request) {
	root, err := filepath.Abs(api.Root)
	if err != nil {
		api.Logger.Error("resolving download root", "err", err.Error())
		http.Error(
			w,
			"resolving download root",
			http.StatusInternalServerError,
		)
		return
	}

	resolved := filepath.Clean(filepath.Join(
		root,
		r.PathValue("date"),
		r.PathValue("folder"),
		r.PathValue("filename"),
	))
	if !strings.HasPrefix(resolved, root+string(filepath.Separator)) {
		http.Error(w, "access denied", http.StatusForbidden)
		return
	}

	file, err := os.Open(resolved)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(
		"Content-Disposition",
		`attachment; filename="`+filepath.Base(resolved)+`"`,
	)
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
