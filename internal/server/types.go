package server

import "reelfeed/internal/media"

type feedItem struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	Folder   string  `json:"folder"`
	RelPath  string  `json:"relpath"`
	URL      string  `json:"url"`
	MTime    float64 `json:"mtime"`
	Size     int64   `json:"size"`
}

type feedResponse struct {
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
	Items  []feedItem `json:"items"`
}

type suggestItem struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Folder   string `json:"folder"`
	RelPath  string `json:"relpath"`
}

type suggestResponse struct {
	Items []suggestItem `json:"items"`
}

type foldersResponse struct {
	Folders []string `json:"folders"`
}

// StatusResponse reports runtime information about a serving instance. It is
// shared with the CLI client.
type StatusResponse struct {
	InstanceID string `json:"instance_id"`
	Root       string `json:"root"`
	Items      int    `json:"items"`
	BuiltAt    string `json:"built_at"`
	PID        int    `json:"pid"`
}

// MessageResponse is the generic acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

func toFeedItem(it media.Item) feedItem {
	return feedItem{
		ID:       it.ID,
		Filename: it.Filename,
		Folder:   it.Folder,
		RelPath:  it.RelPath,
		URL:      "/v/" + it.ID,
		MTime:    it.MTimeSeconds(),
		Size:     it.Size,
	}
}

func toSuggestItem(it media.Item) suggestItem {
	return suggestItem{
		ID:       it.ID,
		Filename: it.Filename,
		Folder:   it.Folder,
		RelPath:  it.RelPath,
	}
}
