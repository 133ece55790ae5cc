package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLocator(endpoint string) *ipLocator {
	return &ipLocator{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestCurrentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "success", "lat": 48.8566, "lon": 2.3522}`))
	}))
	defer srv.Close()

	loc, err := testLocator(srv.URL).Current(context.Background())
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if loc.Lat != 48.8566 || loc.Lng != 2.3522 {
		t.Errorf("Unexpected coordinates %+v", loc)
	}
}

func TestCurrentFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "fail"}`))
	}))
	defer srv.Close()

	if _, err := testLocator(srv.URL).Current(context.Background()); err == nil {
		t.Error("Expected an error for a failed lookup")
	}
}

func TestCurrentHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := testLocator(srv.URL).Current(context.Background()); err == nil {
		t.Error("Expected an error for a non-200 response")
	}
}

func TestCurrentBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := testLocator(srv.URL).Current(context.Background()); err == nil {
		t.Error("Expected an error for an undecodable response")
	}
}

func TestCurrentHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "success", "lat": 1, "lon": 2}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testLocator(srv.URL).Current(ctx); err == nil {
		t.Error("Expected an error for a cancelled context")
	}
}
