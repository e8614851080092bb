package account

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jobportal/jobportal/internal/auth"
	"github.com/jobportal/jobportal/internal/media"
	"github.com/jobportal/jobportal/internal/platform/httpx"
)

const maxMultipartMemory = 16 << 20

// Handler wires HTTP endpoints for the account flows.
type Handler struct {
	logger        *slog.Logger
	service       *Service
	tokens        *auth.TokenService
	gate          *auth.Gate
	validator     *validator.Validate
	tokenTTL      time.Duration
	secureCookies bool
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, tokens *auth.TokenService, gate *auth.Gate, tokenTTL time.Duration, secureCookies bool) *Handler {
	return &Handler{
		logger:        logger,
		service:       service,
		tokens:        tokens,
		gate:          gate,
		validator:     validator.New(),
		tokenTTL:      tokenTTL,
		secureCookies: secureCookies,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := parseBody(r); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Bad request")
		return
	}

	var req RegisterRequest
	if isJSON(r) {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Fail(w, http.StatusBadRequest, "Bad request")
			return
		}
	} else {
		req = RegisterRequest{
			FullName:    r.PostFormValue("fullname"),
			Email:       r.PostFormValue("email"),
			PhoneNumber: r.PostFormValue("phoneNumber"),
			Password:    r.PostFormValue("password"),
			Role:        r.PostFormValue("role"),
		}
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Something is missing")
		return
	}

	file, err := formFile(r)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid file data.")
		return
	}

	user, err := h.service.Register(r.Context(), req, file)
	if err != nil {
		h.logger.Error("register failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusCreated, httpx.Envelope{
		Message: "Account created successfully.",
		User:    user.Sanitized(),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if isJSON(r) {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Fail(w, http.StatusBadRequest, "Bad request")
			return
		}
	} else {
		if err := parseBody(r); err != nil {
			httpx.Fail(w, http.StatusBadRequest, "Bad request")
			return
		}
		req = LoginRequest{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
			Role:     r.PostFormValue("role"),
		}
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Something is missing")
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	auth.SetSessionCookie(w, token, h.tokenTTL, h.secureCookies)

	httpx.OK(w, http.StatusOK, httpx.Envelope{
		Message: fmt.Sprintf("Welcome back %s", user.FullName),
		User:    user.Sanitized(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.secureCookies)
	httpx.OK(w, http.StatusOK, httpx.Envelope{Message: "Logged out successfully."})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := parseBody(r); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Bad request")
		return
	}

	req := UpdateProfileRequest{
		FullName:    r.PostFormValue("fullname"),
		Email:       r.PostFormValue("email"),
		PhoneNumber: r.PostFormValue("phoneNumber"),
		Bio:         r.PostFormValue("bio"),
		Skills:      r.PostFormValue("skills"),
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Something is missing")
		return
	}

	file, err := formFile(r)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid file data.")
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	user, err := h.service.UpdateProfile(r.Context(), userID, req, file)
	if err != nil {
		h.logger.Error("update profile failed", slog.Any("error", err), slog.String("user_id", userID))
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusOK, httpx.Envelope{
		Message: "Profile updated successfully.",
		User:    user.Sanitized(),
	})
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func parseBody(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxMultipartMemory)
	}
	return r.ParseForm()
}

// formFile extracts the optional "file" part. A missing part is not an error.
func formFile(r *http.Request) (*media.File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &media.File{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Data:     data,
	}, nil
}
