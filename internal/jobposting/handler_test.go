package jobposting

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/jobportal/internal/auth"
)

func newJobRouter(t *testing.T) (chi.Router, *Service, *auth.TokenService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(newMockRepository(), nil)
	tokens := auth.NewTokenService([]byte("jobs-secret"), time.Hour)
	handler := NewHandler(logger, service, auth.NewGate(logger, tokens))

	router := chi.NewRouter()
	handler.MountRoutes(router)
	return router, service, tokens
}

func TestListEndpoint(t *testing.T) {
	router, service, _ := newJobRouter(t)

	_, err := service.Post(context.Background(), postRequest("Backend Engineer"), "recruiter-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/get?keyword=backend", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Backend Engineer")
}

func TestShowUnknownJob(t *testing.T) {
	router, _, _ := newJobRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/get/nope", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Job not found.")
}

func TestPostRequiresAuth(t *testing.T) {
	router, _, _ := newJobRouter(t)

	body, err := json.Marshal(postRequest("Backend Engineer"))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestPostAndAdminList(t *testing.T) {
	router, _, tokens := newJobRouter(t)

	token, err := tokens.Issue("recruiter-9")
	require.NoError(t, err)

	body, err := json.Marshal(postRequest("Platform Engineer"))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	assert.Contains(t, res.Body.String(), "New job created successfully.")

	adminReq := httptest.NewRequest(http.MethodGet, "/getadminjobs", nil)
	adminReq.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	adminRes := httptest.NewRecorder()
	router.ServeHTTP(adminRes, adminReq)

	assert.Equal(t, http.StatusOK, adminRes.Code)
	assert.Contains(t, adminRes.Body.String(), "Platform Engineer")
}

func TestPostMissingFields(t *testing.T) {
	router, _, tokens := newJobRouter(t)

	token, err := tokens.Issue("recruiter-9")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/post", bytes.NewReader([]byte(`{"title":"Only Title"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Something is missing.")
}
