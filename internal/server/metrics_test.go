package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestNewMetrics tests the Metrics constructor.
func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
}

// TestMetrics_ActiveGauge verifies the gauge methods do not panic and the
// gauge appears in the exposition.
func TestMetrics_ActiveGauge(t *testing.T) {
	m := NewMetrics()
	m.IncrementActiveGenerations()
	defer m.DecrementActiveGenerations()

	body := scrape(t, m)
	if !strings.Contains(body, "fibseq_active_generations 1") {
		t.Errorf("exposition should report one active generation, got:\n%s", body)
	}
}

// TestMetrics_ObserveGeneration verifies counters and histogram are fed.
func TestMetrics_ObserveGeneration(t *testing.T) {
	m := NewMetrics()
	m.ObserveGeneration(10, 5*time.Millisecond)
	m.ObserveGeneration(90, 1*time.Millisecond)

	body := scrape(t, m)

	t.Run("generation counter", func(t *testing.T) {
		if !strings.Contains(body, "fibseq_generations_total 2") {
			t.Error("exposition should count two generations")
		}
	})

	t.Run("terms counter", func(t *testing.T) {
		if !strings.Contains(body, "fibseq_terms_generated_total 100") {
			t.Error("exposition should count 100 generated terms")
		}
	})

	t.Run("duration histogram", func(t *testing.T) {
		if !strings.Contains(body, "fibseq_generation_duration_seconds_count 2") {
			t.Error("exposition should record two duration observations")
		}
	})
}

// TestMetrics_WritePrometheus verifies the endpoint includes Go runtime
// collectors alongside the application metrics.
func TestMetrics_WritePrometheus(t *testing.T) {
	body := scrape(t, NewMetrics())

	if !strings.Contains(body, "go_") {
		t.Error("metrics output should contain Go runtime metrics")
	}
	if !strings.Contains(body, "fibseq_generations_total") {
		t.Error("metrics output should contain fibseq_generations_total")
	}
}

// scrape performs a GET against the exposition handler.
func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, req)
	return rec.Body.String()
}
