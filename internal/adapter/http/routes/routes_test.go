package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		APIPrefix:                 "/api",
		StoreDriver:               config.StoreDriverMemory,
		WorkOrderResolutionPolicy: "strict",
		CORSAllowedOrigins:        []string{"*"},
	}
	deps, err := NewDependencies(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(deps.Close)
	return NewRouter(cfg, deps)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &got)
	}
	return w.Code, got
}

func TestNewDependencies_RejectsUnknownPolicy(t *testing.T) {
	_, err := NewDependencies(context.Background(), config.Config{StoreDriver: config.StoreDriverMemory, WorkOrderResolutionPolicy: "lenient"})
	assert.Error(t, err)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Backend is running", body["message"])

	code, body = call(t, r, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])

	code, _ = call(t, r, http.MethodGet, "/healthz/live", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, r, http.MethodGet, "/healthz/ready", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_UploadsDisabledWithoutBucket(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodGet, "/api/upload-url?requestId=SN-1&role=U&remark=good&woId=WO-1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "UPLOADS_NOT_CONFIGURED", body["code"])

	code, body = call(t, r, http.MethodGet, "/api/upload-url?requestId=SN-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "MISSING_PARAMETERS", body["code"])
}

func TestRouter_RequestLifecycle(t *testing.T) {
	r := newTestRouter(t)

	code, created := call(t, r, http.MethodPost, "/api/requests", map[string]any{
		"customer_name": "Ana", "phone_number": "555-0101", "location": "Rua A, 10", "request_type": "outage",
	})
	require.Equal(t, http.StatusOK, code)
	requestID := created["requestId"].(string)
	ids := created["workorder_ids"].([]any)
	require.Len(t, ids, 3)
	u, p, tr := ids[0].(string), ids[1].(string), ids[2].(string)

	code, body := call(t, r, http.MethodGet, "/api/work-orders", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["work_orders"], 3)

	code, body = call(t, r, http.MethodPost, "/api/purchase-orders", map[string]any{
		"requestId": requestID, "woId": p, "item_name": "Pole 12m", "quantity": 1, "price": 1250.5,
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INSPECTION_NOT_COMPLETED", body["code"])

	code, _ = call(t, r, http.MethodPost, "/api/work-orders/"+u+"/inspect", nil)
	require.Equal(t, http.StatusOK, code)
	_, body = call(t, r, http.MethodGet, "/api/requests/search?requestId="+requestID, nil)
	assert.Equal(t, "IN-PROGRESS", body["request"].(map[string]any)["status"])

	for id, remark := range map[string]string{u: "GOOD", p: "REPLACE", tr: "good"} {
		code, _ = call(t, r, http.MethodPost, "/api/work-orders/"+id+"/submit", map[string]string{"remark": remark})
		require.Equal(t, http.StatusOK, code)
	}

	code, body = call(t, r, http.MethodPost, "/api/work-orders/"+u+"/submit", map[string]string{"remark": "REPLACE"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "WORK_ORDER_ALREADY_RESOLVED", body["code"])

	_, body = call(t, r, http.MethodGet, "/api/requests/search?requestId="+requestID, nil)
	req := body["request"].(map[string]any)
	assert.Equal(t, "INSPECTION_COMPLETED", req["status"])
	assert.Equal(t, float64(1), req["total_replacements"])

	_, body = call(t, r, http.MethodGet, "/api/requests/incoming-with-workorders", nil)
	assert.Len(t, body["incoming_requests"], 1)

	code, body = call(t, r, http.MethodPost, "/api/purchase-orders", map[string]any{
		"requestId": requestID, "woId": u, "item_name": "Unit", "quantity": 1, "price": "10",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "WORK_ORDER_NOT_REPLACE", body["code"])

	code, body = call(t, r, http.MethodPost, "/api/purchase-orders", map[string]any{
		"requestId": requestID, "woId": p, "item_name": "Pole 12m", "quantity": 1, "price": 1250.5,
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["poId"])

	_, body = call(t, r, http.MethodGet, "/api/customer/request-status?requestId="+requestID, nil)
	assert.Equal(t, "ORDERED", body["request"].(map[string]any)["status"])
	pos := body["purchase_orders"].([]any)
	require.Len(t, pos, 1)
	assert.Equal(t, "1250.5", pos[0].(map[string]any)["price"])

	_, body = call(t, r, http.MethodGet, "/api/requests/ordered", nil)
	assert.Len(t, body["ordered_requests"], 1)
	_, body = call(t, r, http.MethodGet, "/api/requests/incoming", nil)
	assert.Len(t, body["incoming_requests"], 0)
	_, body = call(t, r, http.MethodGet, "/api/purchase-orders", nil)
	assert.Len(t, body["purchase_orders"], 1)
}
