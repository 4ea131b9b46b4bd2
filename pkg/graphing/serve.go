package graphing

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Serve exposes the rendered chart over HTTP and blocks until the
// process is interrupted. This is the interactive viewing mode used when
// no output file is requested.
func Serve(l *Layout, addr, runID string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := NewChart(l).Render(w); err != nil {
			log.Errorf("Failed to render chart: %v", err)
		}
	})

	log.WithField("run", runID).Infof("Serving graph on http://localhost%s (Ctrl+C to stop)", addr)
	return http.ListenAndServe(addr, mux)
}
