package api

import (
	"delivery-cost-service/internal/adapters/repositories"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter() http.Handler {
	return NewRouter(
		repositories.NewMemoryCoefficientStore(),
		repositories.NewMemoryCalculationLog(),
		repositories.NewMemoryContactRepository(),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	decoded := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not valid JSON: %v (body %q)", err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestHealthAlwaysOK(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf(`status field = %v, want "ok"`, body["status"])
	}
}

func TestCalculateDeliveryWithDefaults(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodPost, "/api/calculate-delivery", `{"distance": 25, "weight": 5.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", rec.Code, body)
	}

	cost, ok := body["cost"].(float64)
	if !ok {
		t.Fatalf("cost missing from response: %v", body)
	}
	if math.Abs(cost-15.0) > 1e-9 {
		t.Fatalf("cost = %v, want 15.0", cost)
	}

	breakdown, ok := body["breakdown"].(map[string]any)
	if !ok {
		t.Fatalf("breakdown missing from response: %v", body)
	}
	if math.Abs(breakdown["distance_cost"].(float64)-12.5) > 1e-9 {
		t.Fatalf("distance_cost = %v, want 12.5", breakdown["distance_cost"])
	}
	if math.Abs(breakdown["weight_cost"].(float64)-2.5) > 1e-9 {
		t.Fatalf("weight_cost = %v, want 2.5", breakdown["weight_cost"])
	}
}

func TestCalculateDeliveryMissingWeight(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodPost, "/api/calculate-delivery", `{"distance": 25}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["error"] == nil {
		t.Fatalf("expected error message in response, got %v", body)
	}
}

func TestCalculateDeliveryNegativeDistance(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/calculate-delivery", `{"distance": -1, "weight": 5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCalculateDeliveryRejectsGet(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/api/calculate-delivery", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestUpdateThenGetCoefficients(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodPost, "/admin/update", `{"distance_coefficient": 1.0, "weight_coefficient": 2.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", rec.Code, body)
	}

	rec, body = doJSON(t, router, http.MethodGet, "/api/coefficients", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["distance_coefficient"].(float64) != 1.0 {
		t.Fatalf("distance_coefficient = %v, want 1.0", body["distance_coefficient"])
	}
	if body["weight_coefficient"].(float64) != 2.0 {
		t.Fatalf("weight_coefficient = %v, want 2.0", body["weight_coefficient"])
	}

	// Estimates must pick up the new pair immediately.
	rec, body = doJSON(t, router, http.MethodPost, "/api/calculate-delivery", `{"distance": 10, "weight": 3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if math.Abs(body["cost"].(float64)-16.0) > 1e-9 {
		t.Fatalf("cost = %v, want 16.0", body["cost"])
	}
}

func TestUpdateCoefficientsNegativeValueLeavesRecordUnchanged(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/admin/update", `{"distance_coefficient": -1.0, "weight_coefficient": 2.0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec, body := doJSON(t, router, http.MethodGet, "/api/coefficients", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["distance_coefficient"].(float64) != 0.5 {
		t.Fatalf("distance_coefficient = %v, want default 0.5 after rejected update", body["distance_coefficient"])
	}
}

func TestUpdateCoefficientsMissingField(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/admin/update", `{"distance_coefficient": 1.0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestContactSubmissionRoundTrip(t *testing.T) {
	router := newTestRouter()

	rec, body := doJSON(t, router, http.MethodPost, "/api/contact", `{"name": "Jane", "email": "jane@example.com", "message": "hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", rec.Code, body)
	}
	if body["submission_id"].(float64) != 1 {
		t.Fatalf("submission_id = %v, want 1", body["submission_id"])
	}

	rec, body = doJSON(t, router, http.MethodGet, "/admin/contacts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	contacts := body["contacts"].([]any)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
}

func TestContactSubmissionMissingEmail(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/contact", `{"name": "Jane", "message": "hello"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCalculationsListedAfterEstimates(t *testing.T) {
	router := newTestRouter()

	for i := 0; i < 3; i++ {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/calculate-delivery", `{"distance": 2, "weight": 2}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	}

	rec, body := doJSON(t, router, http.MethodGet, "/admin/calculations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	calcs := body["calculations"].([]any)
	if len(calcs) != 3 {
		t.Fatalf("expected 3 calculations, got %d", len(calcs))
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodGet, "/health", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header on response")
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/calculate-delivery", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS allow-origin header")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
