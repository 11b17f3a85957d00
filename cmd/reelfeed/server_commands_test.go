package main

import (
	"context"
	"testing"
	"time"

	"reelfeed/internal/library"
	"reelfeed/internal/logging"
	"reelfeed/internal/server"
	"reelfeed/internal/testsupport"
)

func TestStatusWithoutRunningServer(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.Bind = "127.0.0.1:1"
	configPath := writeTestConfig(t, cfg)

	_, _, err := runCLI(t, configPath, "status")
	if err == nil {
		t.Fatal("expected error when no server is listening")
	}
	requireContains(t, err.Error(), "reelfeed serve")
}

func TestStatusAndStopAgainstRunningServer(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	base := time.Now().Add(-time.Hour)
	testsupport.WriteVideo(t, cfg.Paths.Root, "clip.mp4", 64, base)

	store, err := library.OpenStore(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	lib := library.New(cfg, store, logging.NopLogger())
	srv, err := server.New(cfg, lib, logging.NopLogger())
	if err != nil {
		t.Fatalf("create server: %v", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(runCtx) }()

	var addr string
	deadline := time.Now().Add(5 * time.Second)
	for addr == "" {
		if time.Now().After(deadline) {
			t.Fatal("server did not start listening")
		}
		addr = srv.Addr()
		if addr == "" {
			time.Sleep(10 * time.Millisecond)
		}
	}

	// Point the CLI at the ephemeral port the server actually bound.
	cfg.Paths.Bind = addr
	configPath := writeTestConfig(t, cfg)

	out, _, err := runCLI(t, configPath, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Server Status")
	requireContains(t, out, "Videos:        1")

	out, _, err = runCLI(t, configPath, "reindex")
	if err != nil {
		t.Fatalf("reindex: %v", err)
	}
	requireContains(t, out, "reindex")

	out, _, err = runCLI(t, configPath, "stop")
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	requireContains(t, out, "shutting down")

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("server run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after shutdown request")
	}
}
