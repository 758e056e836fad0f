package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linoteia/portfolio/pkg/i18n"
)

//go:embed lang/*.json
var langFiles embed.FS

//go:embed assets
var assetFiles embed.FS

// assetsHandler serves stylesheets and images under /assets/.
func assetsHandler(dir string) http.Handler {
	var root http.FileSystem
	if dir != "" {
		root = http.Dir(dir)
	} else {
		sub, err := fs.Sub(assetFiles, "assets")
		if err != nil {
			panic(err)
		}
		root = http.FS(sub)
	}
	return http.StripPrefix("/assets/", http.FileServer(root))
}

// LangDocument returns the embedded content document for code.
func LangDocument(code i18n.Code) ([]byte, error) {
	return fs.ReadFile(langFiles, "lang/"+code.String()+".json")
}

func (h *handlers) langDocument(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "code")
	code, ok := h.langs.Lookup(raw)
	if !ok || code.String() != raw {
		http.NotFound(w, r)
		return
	}
	data, err := LangDocument(code)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}
