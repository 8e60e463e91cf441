package http

import (
	"net/http"
	"path"
)

// spaHandler serves files under dir for GET and HEAD. Anything else, including
// unknown paths and directories, receives the index document so the frontend
// router can resolve it client-side.
func spaHandler(dir, index string) http.HandlerFunc {
	root := http.Dir(dir)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			if serveFile(w, r, root, path.Clean("/"+r.URL.Path)) {
				return
			}
		}
		if !serveFile(w, r, root, "/"+index) {
			http.NotFound(w, r)
		}
	}
}

// serveFile writes name from root if it is a regular file and reports whether it did.
func serveFile(w http.ResponseWriter, r *http.Request, root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil || st.IsDir() {
		return false
	}
	http.ServeContent(w, r, st.Name(), st.ModTime(), f)
	return true
}
