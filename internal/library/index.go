package library

import (
	"sort"
	"strings"
	"time"

	"reelfeed/internal/media"
)

// Index is a point-in-time snapshot of the media root: every recognized
// video newest-first, plus the sorted set of folders containing them.
type Index struct {
	Root    string
	BuiltAt time.Time
	Items   []media.Item
	Folders []string

	byID map[string]int
}

// ItemByID looks up an item by its stable identifier.
func (idx *Index) ItemByID(id string) (media.Item, bool) {
	if idx == nil {
		return media.Item{}, false
	}
	if idx.byID == nil {
		idx.rebuildLookup()
	}
	pos, ok := idx.byID[id]
	if !ok {
		return media.Item{}, false
	}
	return idx.Items[pos], true
}

// Len reports the number of indexed items.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Items)
}

func (idx *Index) rebuildLookup() {
	idx.byID = make(map[string]int, len(idx.Items))
	for i, it := range idx.Items {
		idx.byID[it.ID] = i
	}
}

// finalize sorts items newest-first and derives the folder list. The folder
// set always includes "" for the root.
func (idx *Index) finalize() {
	sort.SliceStable(idx.Items, func(i, j int) bool {
		a, b := idx.Items[i], idx.Items[j]
		if !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.After(b.ModTime)
		}
		return a.RelPath < b.RelPath
	})

	seen := map[string]struct{}{"": {}}
	for _, it := range idx.Items {
		seen[it.Folder] = struct{}{}
	}
	folders := make([]string, 0, len(seen))
	for folder := range seen {
		folders = append(folders, folder)
	}
	sortFolders(folders)
	idx.Folders = folders
	idx.rebuildLookup()
}

// sortFolders orders folders by depth first, then case-insensitively, so the
// root and its immediate children list ahead of deeper paths.
func sortFolders(folders []string) {
	sort.Slice(folders, func(i, j int) bool {
		di := strings.Count(folders[i], "/")
		dj := strings.Count(folders[j], "/")
		if di != dj {
			return di < dj
		}
		return strings.ToLower(folders[i]) < strings.ToLower(folders[j])
	})
}
