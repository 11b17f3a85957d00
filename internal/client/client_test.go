package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reelfeed/internal/client"
)

func TestNewResolvesWildcardBind(t *testing.T) {
	c, err := client.New("0.0.0.0:5179")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://127.0.0.1:5179" {
		t.Fatalf("unexpected base url %q", c.BaseURL())
	}

	if _, err := client.New("not-a-bind"); err == nil {
		t.Fatal("expected error for malformed bind")
	}
}

func TestClientCallsEndpoints(t *testing.T) {
	var gotPath, gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/status":
			w.Write([]byte(`{"instance_id":"abc","root":"/media","items":3,"pid":42}`))
		case "/shutdown":
			w.Write([]byte(`{"message":"server shutting down"}`))
		case "/api/reindex":
			w.Write([]byte(`{"message":"reindex complete"}`))
		}
	}))
	defer ts.Close()

	c, err := client.New(strings.TrimPrefix(ts.URL, "http://"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	status, err := c.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.InstanceID != "abc" || status.Items != 3 {
		t.Fatalf("unexpected status %+v", status)
	}
	if gotPath != "/api/status" || gotMethod != http.MethodGet {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}

	msg, err := c.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if msg != "server shutting down" {
		t.Fatalf("unexpected message %q", msg)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("Stop must POST, got %s", gotMethod)
	}

	if _, err := c.Reindex(ctx); err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if gotPath != "/api/reindex" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}

func TestClientSurfacesServerErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"index not ready"}`))
	}))
	defer ts.Close()

	c, err := client.New(strings.TrimPrefix(ts.URL, "http://"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Status(context.Background())
	if err == nil || !strings.Contains(err.Error(), "index not ready") {
		t.Fatalf("expected server error message, got %v", err)
	}
}
