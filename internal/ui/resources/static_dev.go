//go:build dev

package resources

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

// resourceDir derives the absolute path to a directory next to this source
// file, regardless of where the binary is run from.
func resourceDir(name, fallback string) string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return fallback
	}
	return filepath.Join(filepath.Dir(filename), name)
}

// Handler returns an HTTP handler for serving static files.
// In dev mode, files are served directly from the filesystem for hot reloading.
func Handler() http.Handler {
	staticDir := resourceDir("static", StaticDirectoryPath)
	slog.Info("static assets served from filesystem", "path", staticDir)

	return http.StripPrefix("/static/", http.FileServer(http.FS(os.DirFS(staticDir))))
}

// Templates returns the page templates, read from disk on every parse.
func Templates() fs.FS {
	return os.DirFS(resourceDir("templates", TemplatesDirectoryPath))
}

// WatchDirs lists the directories the dev server watches for changes.
func WatchDirs() []string {
	return []string{
		resourceDir("static", StaticDirectoryPath),
		resourceDir("templates", TemplatesDirectoryPath),
	}
}
