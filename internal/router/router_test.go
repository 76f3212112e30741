package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"products-api/internal/handler"
	"products-api/internal/middleware"
	"products-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const testOrigin = "http://localhost:5173"

// stubProductService records which operation was routed to it.
type stubProductService struct {
	called string
	id     int64
}

func (s *stubProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	s.called = "GetAll"
	return []model.Product{}, nil
}

func (s *stubProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s.called, s.id = "GetByID", id
	return &model.Product{ID: id}, nil
}

func (s *stubProductService) Create(ctx context.Context, input *model.ProductInput) (*model.Product, error) {
	s.called = "Create"
	return &model.Product{ID: 1}, nil
}

func (s *stubProductService) Update(ctx context.Context, id int64, input *model.ProductInput) (*model.Product, error) {
	s.called, s.id = "Update", id
	return &model.Product{ID: id}, nil
}

func (s *stubProductService) Delete(ctx context.Context, id int64) error {
	s.called, s.id = "Delete", id
	return nil
}

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

func newTestRouter(svc *stubProductService) http.Handler {
	logger := zerolog.Nop()
	return New(
		handler.NewProductHandler(svc, logger),
		handler.NewHealthHandler(stubPinger{}, logger),
		Options{AllowedOrigin: testOrigin, RequestTimeout: 5 * time.Second},
		logger,
	)
}

func TestRouter_ProductRoutes(t *testing.T) {
	body := `{"name":"Widget","price":"1","description":"d","category":"c"}`

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedCall   string
		expectedID     int64
	}{
		{"List", http.MethodGet, "/api/products", "", http.StatusOK, "GetAll", 0},
		{"List with trailing slash", http.MethodGet, "/api/products/", "", http.StatusOK, "GetAll", 0},
		{"Get", http.MethodGet, "/api/products/12", "", http.StatusOK, "GetByID", 12},
		{"Create", http.MethodPost, "/api/products", body, http.StatusCreated, "Create", 0},
		{"Update", http.MethodPut, "/api/products/3", body, http.StatusOK, "Update", 3},
		{"Delete", http.MethodDelete, "/api/products/4", "", http.StatusOK, "Delete", 4},
		{"Invalid id", http.MethodGet, "/api/products/abc", "", http.StatusBadRequest, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubProductService{}
			server := newTestRouter(svc)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			server.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCall, svc.called)
			assert.Equal(t, tt.expectedID, svc.id)
			assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_Index(t *testing.T) {
	server := newTestRouter(&stubProductService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Products CRUD API"}`, w.Body.String())
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), "CORS applies to /api routes only")
}

func TestRouter_Health(t *testing.T) {
	server := newTestRouter(&stubProductService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestRouter_Preflight(t *testing.T) {
	svc := &stubProductService{}
	server := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodOptions, "/api/products/1", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.Empty(t, svc.called)
}

func TestRouter_PreflightUnknownAPIPath(t *testing.T) {
	server := newTestRouter(&stubProductService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/nope", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_OutOfRangeID(t *testing.T) {
	svc := &stubProductService{}
	server := newTestRouter(svc)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/products/2147483648", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String(), method)
	}
	assert.Empty(t, svc.called)
}

func TestRouter_UnknownRoutes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"Unknown path", http.MethodGet, "/nope", http.StatusNotFound, `{"error":"Not found"}`},
		{"Unknown api path", http.MethodGet, "/api/orders", http.StatusNotFound, `{"error":"Not found"}`},
		{"Wrong method", http.MethodPatch, "/api/products/1", http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestRouter(&stubProductService{})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			server.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
