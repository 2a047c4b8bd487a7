package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/middleware"
	"hostel-backend/testutil"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	return SetupRouter(NewHandlers(db, "admin@hostel.com", "admin123"), []string{"*"})
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func id(t *testing.T, rec *httptest.ResponseRecorder, key string) string {
	t.Helper()
	v, ok := decode(t, rec)[key].(float64)
	require.True(t, ok, rec.Body.String())
	return strconv.Itoa(int(v))
}

func TestHealth(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestHostelsListSeeded(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/hostels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hostels []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hostels))
	assert.Len(t, hostels, 4)
	assert.Equal(t, "Aravali Hostel", hostels[0]["hostel_name"])
}

func TestErrorBodies(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/rooms/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Room not found", decode(t, rec)["error"])

	rec = do(t, r, http.MethodGet, "/api/rooms/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id", decode(t, rec)["error"])

	rec = do(t, r, http.MethodPost, "/api/rooms", map[string]interface{}{"room_number": "A-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required fields: hostel_id, capacity", decode(t, rec)["error"])

	rec = do(t, r, http.MethodPost, "/api/rooms", map[string]interface{}{
		"hostel_id": 1, "room_number": "A-1", "capacity": 2, "room_type": "penthouse",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "room_type must be one of")

	req := httptest.NewRequest(http.MethodPost, "/api/hostels", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "Invalid request payload")
}

func TestAllotmentLifecycleOverHTTP(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/rooms", map[string]interface{}{
		"hostel_id": 1, "room_number": "A-101", "capacity": 1, "room_type": "single",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	roomID := id(t, rec, "room_id")

	residents := make([]string, 2)
	for i, email := range []string{"aarav@example.com", "kabir@example.com"} {
		rec = do(t, r, http.MethodPost, "/api/residents", map[string]interface{}{
			"name": "Resident", "gender": "male", "contact_number": "98100000" + strconv.Itoa(10+i), "email": email,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		residents[i] = id(t, rec, "resident_id")
	}

	rec = do(t, r, http.MethodPost, "/api/residents", map[string]interface{}{
		"name": "Copy", "gender": "male", "contact_number": "9810000099", "email": "aarav@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	allot := func(residentID string) *httptest.ResponseRecorder {
		rid, _ := strconv.Atoi(residentID)
		room, _ := strconv.Atoi(roomID)
		return do(t, r, http.MethodPost, "/api/allotments", map[string]interface{}{
			"resident_id": rid, "room_id": room, "check_in_date": "2024-07-01",
		})
	}

	rec = allot(residents[0])
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	allotmentID := id(t, rec, "allotment_id")

	rec = allot(residents[1])
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Room is full", decode(t, rec)["error"])

	rec = do(t, r, http.MethodGet, "/api/rooms/"+roomID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	room := decode(t, rec)
	assert.Equal(t, "full", room["status"])
	assert.Equal(t, float64(1), room["occupied"])

	rec = do(t, r, http.MethodPost, "/api/allotments/"+allotmentID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "completed", decode(t, rec)["status"])

	rec = do(t, r, http.MethodGet, "/api/rooms/"+roomID, nil)
	room = decode(t, rec)
	assert.Equal(t, "available", room["status"])
	assert.Equal(t, float64(0), room["occupied"])

	rec = do(t, r, http.MethodDelete, "/api/allotments/"+allotmentID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Allotment deleted successfully", decode(t, rec)["message"])
}

func TestAdminLogin(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/auth/admin", map[string]string{"email": "admin@hostel.com", "password": "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decode(t, rec)["type"])

	rec = do(t, r, http.MethodPost, "/api/auth/admin", map[string]string{"email": "admin@hostel.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid admin credentials", decode(t, rec)["error"])

	rec = do(t, r, http.MethodPost, "/api/auth/resident", map[string]string{"identifier": "ghost@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResidentPortal(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/rooms", map[string]interface{}{
		"hostel_id": 2, "room_number": "N-1", "capacity": 2, "roommate_type": "studious",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	roomID, _ := strconv.Atoi(id(t, rec, "room_id"))

	rec = do(t, r, http.MethodPost, "/api/residents", map[string]interface{}{
		"name": "Zoya", "gender": "female", "contact_number": "9810000001",
		"hostel_id": 2, "roommate_type": "studious",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/resident-portal/" + id(t, rec, "resident_id")

	rec = do(t, r, http.MethodGet, base+"/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decode(t, rec)
	assert.Len(t, dash["availableRooms"], 1)
	assert.Nil(t, dash["room"])

	rec = do(t, r, http.MethodPost, base+"/room-selection", map[string]int{"room_id": roomID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodPost, base+"/maintenance", map[string]string{"issue_description": "Desk lamp"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pending", decode(t, rec)["complaint_status"])

	rec = do(t, r, http.MethodPost, base+"/laundry", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodGet, base+"/dashboard", nil)
	dash = decode(t, rec)
	assert.NotNil(t, dash["room"])
	assert.Len(t, dash["maintenance"], 1)
	assert.Len(t, dash["laundry"], 1)

	rec = do(t, r, http.MethodGet, "/api/resident-portal/999/dashboard", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinancialSummaryExport(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/views/financial-summary/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "financial-summary-")
	assert.NotZero(t, rec.Body.Len())

	for _, view := range []string{"resident-room-details", "maintenance-dashboard", "room-occupancy", "financial-summary"} {
		rec := do(t, r, http.MethodGet, "/api/views/"+view, nil)
		assert.Equal(t, http.StatusOK, rec.Code, view)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t)
	do(t, r, http.MethodGet, "/api/health", nil)

	rec := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hostel_http_requests_total")
}
