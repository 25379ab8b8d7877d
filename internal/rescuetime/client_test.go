// ABOUTME: Tests for the RescueTime daily summary client.
// ABOUTME: Uses a fake feed server; validates mapping and retry behavior.
package rescuetime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const feedJSON = `[
	{"date": "2022-01-01", "all_productive_hours": 4.5, "all_distracting_hours": 1.25, "neutral_hours": 0.75},
	{"date": "2022-01-02", "all_productive_hours": 2.0, "all_distracting_hours": 3.0, "neutral_hours": 1.0}
]`

func TestDailySummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/anapi/daily_summary_feed" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(feedJSON))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.Client(), srv.URL, "test-key")
	entries, err := c.DailySummary(context.Background())
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2022-01-01" {
		t.Errorf("Date = %q", entries[0].Date)
	}
	if entries[0].Productive != 4.5 || entries[0].Distracting != 1.25 || entries[0].Neutral != 0.75 {
		t.Errorf("hours = %+v", entries[0])
	}
}

func TestDailySummaryRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.Client(), srv.URL, "k")
	if _, err := c.DailySummary(context.Background()); err != nil {
		t.Fatalf("should recover from transient 500: %v", err)
	}
	if calls < 2 {
		t.Errorf("expected retry, got %d calls", calls)
	}
}

func TestDailySummaryBadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.Client(), srv.URL, "bad")
	if _, err := c.DailySummary(context.Background()); err == nil {
		t.Fatal("expected error for rejected key")
	}
}
