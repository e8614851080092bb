package account

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/jobportal/internal/auth"
)

type testEnv struct {
	router  chi.Router
	repo    *mockRepository
	up      *mockUploader
	service *Service
	tokens  *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newMockRepository()
	up := &mockUploader{url: "https://assets.test/file"}
	service := NewService(repo, up)
	tokens := auth.NewTokenService([]byte("handler-secret"), 720*time.Hour)
	gate := auth.NewGate(logger, tokens)
	handler := NewHandler(logger, service, tokens, gate, 720*time.Hour, false)

	router := chi.NewRouter()
	handler.MountRoutes(router)
	return &testEnv{router: router, repo: repo, up: up, service: service, tokens: tokens}
}

func postForm(t *testing.T, router chi.Router, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func registerForm() url.Values {
	form := url.Values{}
	form.Set("fullname", "Jane Doe")
	form.Set("email", "x@y.com")
	form.Set("phoneNumber", "0812345")
	form.Set("password", "hunter22")
	form.Set("role", "applicant")
	return form
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	res := postForm(t, env.router, "/register", registerForm())
	assert.Equal(t, http.StatusCreated, res.Code)
	assert.Contains(t, res.Body.String(), "Account created successfully.")
	assert.Contains(t, res.Body.String(), `"profilePhoto":""`)
	assert.NotContains(t, res.Body.String(), "hunter22")
	assert.NotContains(t, res.Body.String(), "password")
	assert.Equal(t, 0, env.up.calls)

	// Same email again: conflict, no second record.
	res = postForm(t, env.router, "/register", registerForm())
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "User already exists with this email.")
	assert.Equal(t, 1, env.repo.creates)
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	form := registerForm()
	form.Del("password")
	res := postForm(t, env.router, "/register", form)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Something is missing")
	assert.Equal(t, 0, env.repo.creates)
}

func TestLoginSetsCookie(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, postForm(t, env.router, "/register", registerForm()).Code)

	body, err := json.Marshal(map[string]string{
		"email": "x@y.com", "password": "hunter22", "role": "applicant",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	env.router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Welcome back Jane Doe")

	var tokenCookie *http.Cookie
	for _, c := range res.Result().Cookies() {
		if c.Name == auth.CookieName {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie, "login must set the token cookie")
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, http.SameSiteNoneMode, tokenCookie.SameSite)
	assert.Equal(t, int((720 * time.Hour).Seconds()), tokenCookie.MaxAge)

	userID, err := env.tokens.Verify(tokenCookie.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
}

func TestLoginRoleMismatchNoCookie(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, postForm(t, env.router, "/register", registerForm()).Code)

	form := url.Values{}
	form.Set("email", "x@y.com")
	form.Set("password", "hunter22")
	form.Set("role", "recruiter")
	res := postForm(t, env.router, "/login", form)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Account doesn't exist with current role.")
	assert.Empty(t, res.Result().Cookies())
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	res := postForm(t, env.router, "/logout", url.Values{})
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Logged out successfully.")

	cookies := res.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func multipartBody(t *testing.T, fields map[string]string, fileName, fileType string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		h.Set("Content-Type", fileType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{"bio": "hi"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/profile/update", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	env.router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.service.Register(context.Background(), RegisterRequest{
		FullName:    "Jane Doe",
		Email:       "x@y.com",
		PhoneNumber: "0812345",
		Password:    "hunter22",
		Role:        RoleApplicant,
	}, nil)
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	body, contentType := multipartBody(t, map[string]string{
		"bio":    "gopher",
		"skills": "go, sql ,,redis",
	}, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPut, "/profile/update", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	res := httptest.NewRecorder()
	env.router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Profile updated successfully.")

	stored, err := env.repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "gopher", stored.Profile.Bio)
	assert.Equal(t, []string{"go", "sql", "redis"}, stored.Profile.Skills)
	assert.Equal(t, "https://assets.test/file", stored.Profile.Resume)
	assert.Equal(t, "cv.pdf", stored.Profile.ResumeOriginalName)
	assert.Equal(t, 1, env.up.calls)
}
