package main

import (
	"strings"
	"testing"
	"time"

	"reelfeed/internal/testsupport"
)

func TestIndexRebuildAndStats(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	base := time.Now().Add(-time.Hour)
	testsupport.WriteVideo(t, cfg.Paths.Root, "clip_one.mp4", 100, base)
	testsupport.WriteVideo(t, cfg.Paths.Root, "gym/deadlift day.mp4", 200, base.Add(time.Minute))
	testsupport.WriteVideo(t, cfg.Paths.Root, "gym/squats.mov", 300, base.Add(2*time.Minute))
	configPath := writeTestConfig(t, cfg)

	out, _, err := runCLI(t, configPath, "index", "rebuild")
	if err != nil {
		t.Fatalf("index rebuild: %v", err)
	}
	requireContains(t, out, "Indexed 3 videos in 2 folders")

	out, _, err = runCLI(t, configPath, "index", "stats")
	if err != nil {
		t.Fatalf("index stats: %v", err)
	}
	requireContains(t, out, "(root)")
	requireContains(t, out, "Gym")
	requireContains(t, out, "Videos:        3")

	out, _, err = runCLI(t, configPath, "index", "stats", "--json")
	if err != nil {
		t.Fatalf("index stats --json: %v", err)
	}
	requireContains(t, out, `"videos": 3`)
	requireContains(t, out, `"total_size": 600`)
}

func TestIndexListFiltersAndLimits(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	base := time.Now().Add(-time.Hour)
	testsupport.WriteVideo(t, cfg.Paths.Root, "oldest.mp4", 10, base)
	testsupport.WriteVideo(t, cfg.Paths.Root, "gym/middle.mp4", 20, base.Add(time.Minute))
	testsupport.WriteVideo(t, cfg.Paths.Root, "gym/newest.mp4", 30, base.Add(2*time.Minute))
	configPath := writeTestConfig(t, cfg)

	if _, _, err := runCLI(t, configPath, "index", "rebuild"); err != nil {
		t.Fatalf("index rebuild: %v", err)
	}

	out, _, err := runCLI(t, configPath, "index", "ls", "--folder", "gym")
	if err != nil {
		t.Fatalf("index ls: %v", err)
	}
	requireContains(t, out, "newest.mp4")
	requireContains(t, out, "middle.mp4")
	if strings.Contains(out, "oldest.mp4") {
		t.Fatalf("folder filter leaked root item:\n%s", out)
	}

	out, _, err = runCLI(t, configPath, "index", "ls", "--limit", "1")
	if err != nil {
		t.Fatalf("index ls --limit: %v", err)
	}
	requireContains(t, out, "newest.mp4")
	if strings.Contains(out, "oldest.mp4") {
		t.Fatalf("limit did not truncate listing:\n%s", out)
	}
}

func TestIndexStatsWithoutCache(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	configPath := writeTestConfig(t, cfg)

	_, _, err := runCLI(t, configPath, "index", "stats")
	if err == nil {
		t.Fatal("expected error without a cached index")
	}
	requireContains(t, err.Error(), "index rebuild")
}
