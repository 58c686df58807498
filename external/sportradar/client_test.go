package sportradar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/gridiron-ingest/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:        server.Client(),
		BaseURL:           server.URL,
		APIKey:            "test-key",
		RequestsPerMinute: 6000,
		Logger:            logging.NewNop(),
	})
}

func TestGameStatistics_DecodesPayloadAndSendsAPIKey(t *testing.T) {
	t.Parallel()

	var gotKey, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statistics":{"home":{"id":"team-1"}}}`))
	})

	payload, raw, err := client.GameStatistics(context.Background(), "game-uuid-1")
	if err != nil {
		t.Fatalf("fetch game statistics: %v", err)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected x-api-key header, got %q", gotKey)
	}
	if gotPath != "/games/game-uuid-1/statistics.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if len(raw) == 0 {
		t.Fatalf("expected raw body to be returned")
	}
	if _, ok := payload["statistics"]; !ok {
		t.Fatalf("expected statistics key in payload: %+v", payload)
	}
}

func TestGameStatistics_RequiresUUID(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if _, _, err := client.GameStatistics(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty game uuid")
	}
}

func TestDoJSON_MarksRateLimited(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, _, err := client.GameStatistics(context.Background(), "game-uuid-1")
	if err == nil {
		t.Fatalf("expected error for 429 response")
	}
	if !IsRateLimited(err) {
		t.Fatalf("expected rate limited error, got: %v", err)
	}
}

func TestDoJSON_NonRetryableStatusIsPlainError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	})

	_, _, err := client.GameStatistics(context.Background(), "game-uuid-1")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if IsRateLimited(err) {
		t.Fatalf("404 must not be classified as rate limited: %v", err)
	}
}

func TestWeeklyInjuries_ZeroPadsWeekInPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"week":{"id":"week-uuid"},"teams":[]}`))
	})

	payload, _, err := client.WeeklyInjuries(context.Background(), 2024, 3)
	if err != nil {
		t.Fatalf("fetch injuries: %v", err)
	}
	if gotPath != "/seasons/2024/REG/03/injuries.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if payload.Week.ID != "week-uuid" {
		t.Fatalf("unexpected week uuid: %q", payload.Week.ID)
	}
}

func TestSanitizeRedactsAPIKey(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{APIKey: "secret-key", Logger: logging.NewNop()})
	out := client.sanitize(`Get "https://api.example.com/x?api_key=secret-key": dial timeout`)
	if strings.Contains(out, "secret-key") {
		t.Fatalf("expected api key to be redacted: %s", out)
	}
}
