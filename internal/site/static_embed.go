// Package site serves the embedded marketing and admin pages.
package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// FS returns an http.FileSystem for the embedded pages.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Should never happen: the files are compiled in.
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Register attaches the embedded pages to mux: the landing page at /
// and the coefficient admin form at /admin.
func Register(mux *http.ServeMux) {
	files := http.FileServer(FS())

	mux.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, "static/admin.html")
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			files.ServeHTTP(w, r)
			return
		}
		servePage(w, r, "static/index.html")
	})
}

func servePage(w http.ResponseWriter, r *http.Request, name string) {
	body, err := staticFS.ReadFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}
