package search_test

import (
	"testing"
	"time"

	"reelfeed/internal/media"
	"reelfeed/internal/search"
)

func TestScoreTiers(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		filename string
		relPath  string
		want     int
	}{
		{"exact filename", "gym.mp4", "gym.mp4", "fitness/gym.mp4", 1000},
		{"filename substring", "gym", "gym-day.mp4", "fitness/gym-day.mp4", 800 - (len("gym-day.mp4") - len("gym"))},
		{"relpath substring", "fitness", "clip.mp4", "fitness/clip.mp4", 500 - (len("fitness/clip.mp4") - len("fitness"))},
		{"token in filename", "gym xyzzy", "morning_gym.mp4", "other/morning_gym.mp4", 120},
		{"tokens split on separators", "morning.gym", "morning_gym.mp4", "other/morning_gym.mp4", 240},
		{"token in relpath only", "ramadan qqq", "clip.mp4", "ramadan/clip.mp4", 60},
		{"no match", "zzz", "clip.mp4", "folder/clip.mp4", 0},
		{"empty query", "", "clip.mp4", "clip.mp4", 0},
		{"case insensitive", "GYM.MP4", "gym.mp4", "gym.mp4", 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := search.Score(tc.query, tc.filename, tc.relPath); got != tc.want {
				t.Fatalf("Score(%q, %q, %q) = %d, want %d", tc.query, tc.filename, tc.relPath, got, tc.want)
			}
		})
	}
}

func items() []media.Item {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mk := func(rel string, age int) media.Item {
		folder := media.FolderOf(rel)
		filename := rel
		if folder != "" {
			filename = rel[len(folder)+1:]
		}
		when := base.Add(-time.Duration(age) * time.Hour)
		return media.Item{
			ID:       media.ComputeID(rel, when, 1),
			RelPath:  rel,
			Filename: filename,
			Folder:   folder,
			ModTime:  when,
			Size:     1,
		}
	}
	return []media.Item{
		mk("newest.mp4", 0),
		mk("trips/beach.mp4", 1),
		mk("trips/2023/beach-sunset.mp4", 2),
		mk("gym/leg-day.mp4", 3),
		mk("oldest.mp4", 4),
	}
}

func relPaths(items []media.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.RelPath
	}
	return out
}

func TestFilterFolderIncludesDescendants(t *testing.T) {
	got := search.Filter(items(), search.Query{Folder: "trips"})
	want := []string{"trips/beach.mp4", "trips/2023/beach-sunset.mp4"}
	assertPaths(t, got, want)

	if got := search.Filter(items(), search.Query{Folder: "trips/2023"}); len(got) != 1 {
		t.Fatalf("expected 1 item in trips/2023, got %d", len(got))
	}
}

func TestFilterStartsWith(t *testing.T) {
	got := search.Filter(items(), search.Query{StartsWith: "BEACH"})
	want := []string{"trips/beach.mp4", "trips/2023/beach-sunset.mp4"}
	assertPaths(t, got, want)
}

func TestFilterTextOrdersByScore(t *testing.T) {
	got := search.Filter(items(), search.Query{Text: "beach"})
	// beach.mp4 is a shorter filename match than beach-sunset.mp4, so it
	// scores higher despite both containing the query.
	want := []string{"trips/beach.mp4", "trips/2023/beach-sunset.mp4"}
	assertPaths(t, got, want)
}

func TestFilterWithoutTextKeepsRecencyOrder(t *testing.T) {
	got := search.Filter(items(), search.Query{})
	want := []string{"newest.mp4", "trips/beach.mp4", "trips/2023/beach-sunset.mp4", "gym/leg-day.mp4", "oldest.mp4"}
	assertPaths(t, got, want)
}

func TestFiltersCompose(t *testing.T) {
	got := search.Filter(items(), search.Query{Folder: "trips", Text: "sunset"})
	assertPaths(t, got, []string{"trips/2023/beach-sunset.mp4"})
}

func TestPaginate(t *testing.T) {
	all := items()

	page := search.Paginate(all, 0, 2)
	if page.Total != 5 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: total=%d items=%d", page.Total, len(page.Items))
	}

	page = search.Paginate(all, 4, 10)
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 item at tail, got %d", len(page.Items))
	}

	page = search.Paginate(all, 100, 10)
	if page.Total != 5 || len(page.Items) != 0 {
		t.Fatalf("expected empty page past the end, got %d items", len(page.Items))
	}

	page = search.Paginate(all, -5, 2)
	if page.Offset != 0 || len(page.Items) != 2 {
		t.Fatalf("negative offset should clamp to 0, got offset=%d", page.Offset)
	}
}

func assertPaths(t *testing.T, got []media.Item, want []string) {
	t.Helper()
	gotPaths := relPaths(got)
	if len(gotPaths) != len(want) {
		t.Fatalf("got %v, want %v", gotPaths, want)
	}
	for i := range want {
		if gotPaths[i] != want[i] {
			t.Fatalf("got %v, want %v", gotPaths, want)
		}
	}
}
