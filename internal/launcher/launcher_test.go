package launcher_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"reelfeed/internal/launcher"
	"reelfeed/internal/testsupport"
)

func TestArgvConstruction(t *testing.T) {
	cmd := launcher.Command{
		Manager:     "conda",
		Environment: "reels",
		Interpreter: "python",
		Entrypoint:  "app.py",
		AppDir:      "/opt/reels",
		Root:        "/data/videos",
		Host:        "0.0.0.0",
		Port:        5179,
	}
	want := []string{
		"conda", "run", "-n", "reels",
		"python", "app.py",
		"--root", "/data/videos",
		"--host", "0.0.0.0",
		"--port", "5179",
	}
	if got := cmd.Argv(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Argv() = %v, want %v", got, want)
	}
}

func TestArgvPreservesSpacesInRoot(t *testing.T) {
	cmd := launcher.Command{
		Manager:     "conda",
		Environment: "reels",
		Interpreter: "python",
		Entrypoint:  "app.py",
		Root:        "/Desktop/New Videos/all_instagram",
		Host:        "127.0.0.1",
		Port:        8080,
	}
	argv := cmd.Argv()
	found := false
	for _, arg := range argv {
		if arg == "/Desktop/New Videos/all_instagram" {
			found = true
		}
	}
	if !found {
		t.Fatalf("root with spaces must stay a single argument, argv = %v", argv)
	}
	if len(argv) != 12 {
		t.Fatalf("unexpected argv length %d: %v", len(argv), argv)
	}
}

func TestArgvIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cmd := launcher.FromConfig(cfg)
	if !reflect.DeepEqual(cmd.Argv(), cmd.Argv()) {
		t.Fatal("repeated Argv calls must be identical")
	}
	if !reflect.DeepEqual(cmd, launcher.FromConfig(cfg)) {
		t.Fatal("FromConfig must not accumulate state")
	}
}

func TestRunFailsWhenAppDirMissing(t *testing.T) {
	cmd := launcher.Command{
		Manager:     "definitely-not-a-real-binary",
		Environment: "reels",
		Interpreter: "python",
		Entrypoint:  "app.py",
		AppDir:      filepath.Join(t.TempDir(), "missing"),
	}
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected error for missing app dir")
	}
	var chdirErr *launcher.ChdirError
	if !errors.As(err, &chdirErr) {
		t.Fatalf("expected ChdirError, got %T: %v", err, err)
	}
	if chdirErr.Dir != cmd.AppDir {
		t.Fatalf("unexpected dir in error: %q", chdirErr.Dir)
	}
}

func TestRunSurfacesLookupFailure(t *testing.T) {
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	dir := t.TempDir()
	cmd := launcher.Command{
		Manager:     "reelfeed-test-no-such-manager",
		Environment: "reels",
		Interpreter: "python",
		Entrypoint:  "app.py",
		AppDir:      dir,
		Root:        dir,
		Host:        "127.0.0.1",
		Port:        1,
	}
	err = cmd.Run()
	if err == nil {
		t.Fatal("expected lookup error for unknown manager binary")
	}
	var chdirErr *launcher.ChdirError
	if errors.As(err, &chdirErr) {
		t.Fatalf("lookup failure must not be reported as a chdir failure: %v", err)
	}
}
