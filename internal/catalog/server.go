// ABOUTME: HTTP handler publishing a theme catalog as JSON
// ABOUTME: Serves the same array at /themes.json and /api/themes

package catalog

import (
	"net/http"

	"github.com/mauromedda/themeswitch/internal/log"
	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// APIPath is the alternate route for the catalog.
const APIPath = "/api/themes"

// Handler serves the catalog returned by l. Each request fetches afresh so a
// reloaded source is visible without restarting.
func Handler(l Loader) http.Handler {
	mux := http.NewServeMux()
	serve := func(w http.ResponseWriter, r *http.Request) {
		themes, err := l.FetchThemes(r.Context())
		if err != nil {
			log.Warn("serving catalog: %v", err)
			http.Error(w, "catalog unavailable", http.StatusBadGateway)
			return
		}
		body, err := theme.EncodeCatalog(themes)
		if err != nil {
			http.Error(w, "encoding catalog", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(body)
	}
	mux.HandleFunc("GET "+DefaultPath, serve)
	mux.HandleFunc("GET "+APIPath, serve)
	return mux
}
