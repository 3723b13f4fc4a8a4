package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/zamtransit/vendor-portal-backend/internal/config"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/services"
	"github.com/zamtransit/vendor-portal-backend/internal/store/memory"
	"github.com/zamtransit/vendor-portal-backend/pkg/token"
)

type testEnv struct {
	router *gin.Engine
	store  *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Session: config.SessionConfig{
			TTL:        24 * time.Hour,
			CookieName: "vendor_session",
		},
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenExpiry: time.Hour},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}

	st := memory.NewStore()
	sessions := services.NewSessionService(st, st, cfg.Session.TTL, logger)
	receipts := services.NewReceiptService(st, logger)
	tokens := token.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	return &testEnv{
		router: NewRouter(st, sessions, receipts, tokens, cfg, logger),
		store:  st,
	}
}

// do performs a JSON request, attaching the session cookie when given
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a vendor through the API and returns its
// session cookie
func (e *testEnv) registerAndLogin(t *testing.T, username string) (*models.Vendor, *http.Cookie) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/register", gin.H{
		"username": username,
		"password": "pass-phrase-1",
		"name":     "Test Coaches",
		"email":    username + "@example.com",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		Vendor models.Vendor `json:"vendor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	vendor := registered.Vendor

	w = e.do(t, http.MethodPost, "/api/login", gin.H{
		"username": username,
		"password": "pass-phrase-1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "vendor_session" && cookie.Value != "" {
			return &vendor, cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// seedRoute, seedBus and seedTrip create fixtures through the API
func (e *testEnv) seedRoute(t *testing.T, cookie *http.Cookie) *models.Route {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/routes", gin.H{
		"origin":      "Lusaka",
		"destination": "Livingstone",
		"price":       350,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var route models.Route
	decode(t, w, &route)
	return &route
}

func (e *testEnv) seedBus(t *testing.T, cookie *http.Cookie, capacity int) *models.Bus {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/buses", gin.H{
		"name":                "Scania Marcopolo",
		"registration_number": "ALB 4821",
		"capacity":            capacity,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bus models.Bus
	decode(t, w, &bus)
	return &bus
}

func (e *testEnv) seedTrip(t *testing.T, cookie *http.Cookie, routeID, busID int64) *models.Trip {
	t.Helper()
	dep := time.Now().UTC().Add(48 * time.Hour)
	w := e.do(t, http.MethodPost, "/api/trips", gin.H{
		"route_id":       routeID,
		"bus_id":         busID,
		"departure_time": dep.Format(time.RFC3339),
		"arrival_time":   dep.Add(7 * time.Hour).Format(time.RFC3339),
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var trip models.Trip
	decode(t, w, &trip)
	return &trip
}
