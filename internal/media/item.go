package media

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"
)

// Item describes one indexed video file beneath the media root.
type Item struct {
	ID       string
	RelPath  string
	Filename string
	Folder   string
	ModTime  time.Time
	Size     int64
}

// MTimeSeconds reports the modification time as unix seconds with
// sub-second precision, the unit exposed over the API.
func (it Item) MTimeSeconds() float64 {
	return float64(it.ModTime.UnixNano()) / float64(time.Second)
}

// ComputeID derives a stable 16-character identifier from the item's
// relative path, modification time, and size. A touched or rewritten file
// gets a new identity, which keeps stale client URLs from serving the
// wrong bytes.
func ComputeID(relPath string, modTime time.Time, size int64) string {
	h := sha1.New()
	h.Write([]byte(relPath))
	h.Write([]byte(strconv.FormatInt(modTime.UnixNano(), 10)))
	h.Write([]byte(strconv.FormatInt(size, 10)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
