package server

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"reelfeed/internal/logging"
	"reelfeed/internal/search"
)

//go:embed feed.html
var feedPage []byte

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.URL.Query().Get("reindex") == "1" {
		if err := s.lib.Rebuild(r.Context()); err != nil {
			s.logger.Error("reindex on page load failed", logging.Error(err))
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(feedPage)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	idx := s.lib.Snapshot()
	if idx == nil {
		s.writeError(w, http.StatusServiceUnavailable, "index not ready")
		return
	}

	params := r.URL.Query()
	offset, limit := 0, s.cfg.Server.PageSize
	var err error
	if raw := params.Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			s.writeError(w, http.StatusBadRequest, "bad offset/limit")
			return
		}
	}
	if raw := params.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			s.writeError(w, http.StatusBadRequest, "bad offset/limit")
			return
		}
	}
	if offset < 0 {
		offset = 0
	}
	limit = clamp(limit, 1, s.cfg.Server.MaxPageSize)

	matched := search.Filter(idx.Items, search.Query{
		Text:       params.Get("q"),
		Folder:     params.Get("folder"),
		StartsWith: params.Get("starts_with"),
	})
	page := search.Paginate(matched, offset, limit)

	items := make([]feedItem, len(page.Items))
	for i, it := range page.Items {
		items[i] = toFeedItem(it)
	}
	s.writeJSON(w, http.StatusOK, feedResponse{
		Total:  page.Total,
		Offset: page.Offset,
		Limit:  page.Limit,
		Items:  items,
	})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	idx := s.lib.Snapshot()
	if idx == nil {
		s.writeError(w, http.StatusServiceUnavailable, "index not ready")
		return
	}

	params := r.URL.Query()
	limit := s.cfg.Server.SuggestLimit
	if raw := params.Get("limit"); raw != "" {
		// Unlike the feed, a malformed limit falls back to the default.
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	limit = clamp(limit, 1, s.cfg.Server.MaxSuggestLimit)

	matched := search.Filter(idx.Items, search.Query{
		Text:       params.Get("q"),
		Folder:     params.Get("folder"),
		StartsWith: params.Get("starts_with"),
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	items := make([]suggestItem, len(matched))
	for i, it := range matched {
		items[i] = toSuggestItem(it)
	}
	s.writeJSON(w, http.StatusOK, suggestResponse{Items: items})
}

func (s *Server) handleFolders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	idx := s.lib.Snapshot()
	if idx == nil {
		s.writeError(w, http.StatusServiceUnavailable, "index not ready")
		return
	}
	s.writeJSON(w, http.StatusOK, foldersResponse{Folders: idx.Folders})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := StatusResponse{
		InstanceID: s.instanceID,
		Root:       s.cfg.Paths.Root,
		PID:        os.Getpid(),
	}
	if idx := s.lib.Snapshot(); idx != nil {
		status.Items = idx.Len()
		status.BuiltAt = idx.BuiltAt.UTC().Format(time.RFC3339)
	}
	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := s.lib.Rebuild(r.Context()); err != nil {
		s.logger.Error("reindex failed", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "reindex failed")
		return
	}
	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "reindex complete"})
}

func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "server shutting down"})
	go func() {
		// Give the response a moment to flush before tearing the listener down.
		time.Sleep(200 * time.Millisecond)
		s.requestShutdown()
	}()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
