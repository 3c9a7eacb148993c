package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/madiallo/fruittrack/internal/repository/records"
	"github.com/madiallo/fruittrack/internal/server/handlers"
	"github.com/madiallo/fruittrack/internal/service/inventory"
	"github.com/madiallo/fruittrack/internal/service/ledger"
	"github.com/madiallo/fruittrack/internal/service/metrics"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	ledgerSvc := ledger.NewService(records.NewMemoryStore(), nil)
	inventorySvc := inventory.NewService(records.NewMemoryStore(), nil)
	metricsSvc := metrics.NewService(ledgerSvc, nil)

	return New(Handlers{
		Ledger:    handlers.NewLedgerHandler(ledgerSvc, notify.Nop{}, nil),
		Salary:    handlers.NewSalaryHandler(ledgerSvc, notify.Nop{}, nil),
		Message:   handlers.NewMessageHandler(ledgerSvc, notify.Nop{}, nil),
		Inventory: handlers.NewInventoryHandler(inventorySvc, notify.Nop{}, nil),
		Metrics:   handlers.NewMetricsHandler(metricsSvc, nil),
		Data:      handlers.NewDataHandler(ledgerSvc, inventorySvc, notify.Nop{}, nil),
		Export:    handlers.NewExportHandler(nil, nil),
	}, nil)
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePurchaseStampsActor(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/purchases",
		`{"fruitType":"Orange","quantity":"10","unit":"kg","amount":100}`,
		map[string]string{"X-User-Email": "fatou@example.com", "X-User-Name": "Fatou"})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/purchases = %d, body %s", w.Code, w.Body)
	}

	var purchase struct {
		ID             string  `json:"id"`
		PurchaserEmail string  `json:"purchaserEmail"`
		Quantity       float64 `json:"quantity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &purchase); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if purchase.PurchaserEmail != "fatou@example.com" {
		t.Errorf("purchaserEmail = %q, want the identity header value", purchase.PurchaserEmail)
	}
	if purchase.Quantity != 10 {
		t.Errorf("quantity = %v, want the string payload coerced to 10", purchase.Quantity)
	}
}

func TestCreatePurchaseValidationIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/purchases", `{"amount":100}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /api/purchases without fruit type = %d, want 400", w.Code)
	}
}

func TestCreateSaleUpsertsAssignment(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sales",
		`{"assignmentId":"assignment-777","fruitType":"Mango","revenue":90,"quantitySold":3}`,
		map[string]string{"X-User-Email": "moussa@example.com"})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/sales = %d, body %s", w.Code, w.Body)
	}

	var assignment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Sales  []struct {
			Revenue float64 `json:"revenue"`
		} `json:"sales"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &assignment); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if assignment.ID != "assignment-777" || assignment.Status != "in-transit" {
		t.Errorf("upserted assignment = %+v, want assignment-777 in-transit", assignment)
	}
	if len(assignment.Sales) != 1 || assignment.Sales[0].Revenue != 90 {
		t.Errorf("sales = %+v, want one of 90", assignment.Sales)
	}

	// The flat sales view sees the new sale too.
	w = doJSON(t, r, http.MethodGet, "/api/sales", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/sales = %d", w.Code)
	}
	var sales []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &sales); err != nil {
		t.Fatalf("decode sales: %v", err)
	}
	if len(sales) != 1 {
		t.Errorf("GET /api/sales returned %d records, want 1", len(sales))
	}
}

func TestStatsEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/api/purchases", `{"fruitType":"Orange","amount":100}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("seed purchase = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/sales", `{"fruitType":"Orange","revenue":150}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("seed sale = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/stats = %d", w.Code)
	}

	var stats struct {
		TotalPurchases float64 `json:"totalPurchases"`
		TotalSales     float64 `json:"totalSales"`
		NetProfit      float64 `json:"netProfit"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalPurchases != 100 || stats.TotalSales != 150 || stats.NetProfit != 50 {
		t.Errorf("stats = %+v, want 100/150/50", stats)
	}
}

func TestClearAllResetsEverything(t *testing.T) {
	r := newTestRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/api/purchases", `{"fruitType":"Orange","amount":10}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("seed purchase = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/inventory", `{"fruitType":"Orange","quantity":5}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("seed inventory = %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/api/data/clear-all", "", nil); w.Code != http.StatusOK {
		t.Fatalf("DELETE /api/data/clear-all = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/purchases", "", nil)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("GET /api/purchases after clear = %s, want []", body)
	}
	w = doJSON(t, r, http.MethodGet, "/api/inventory", "", nil)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("GET /api/inventory after clear = %s, want []", body)
	}
}

func TestExportUnavailableWithoutSheets(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/export", "", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("POST /api/export without sheets config = %d, want 503", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", w.Code)
	}
}
