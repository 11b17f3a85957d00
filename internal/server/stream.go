package server

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	"reelfeed/internal/logging"
	"reelfeed/internal/media"
)

// handleStream serves /v/{id}. ServeContent handles range requests, which is
// what makes seeking work in the browser video element.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	idx := s.lib.Snapshot()
	if idx == nil {
		s.writeError(w, http.StatusServiceUnavailable, "index not ready")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v/")
	item, ok := idx.ItemByID(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.serveItemFile(w, r, item.RelPath)
}

// handleFile serves /file/{relpath} for direct downloads.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/file/")
	rel, err := url.PathUnescape(raw)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.serveItemFile(w, r, rel)
}

func (s *Server) serveItemFile(w http.ResponseWriter, r *http.Request, rel string) {
	target, err := media.ResolveWithin(s.cfg.Paths.Root, rel)
	if err != nil {
		s.logger.Warn("rejected path outside root", logging.String("relpath", rel))
		http.NotFound(w, r)
		return
	}

	file, err := os.Open(target)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
