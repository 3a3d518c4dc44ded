package handler

import (
	"net/http"
	"path"
)

// Home serves the canvas client page.
func Home(webclientpath string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path.Join(webclientpath, "index.html"))
	}
}
