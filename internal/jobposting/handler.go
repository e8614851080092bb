package jobposting

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jobportal/jobportal/internal/auth"
	"github.com/jobportal/jobportal/internal/platform/httpx"
)

// Handler wires HTTP endpoints for job postings.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	gate      *auth.Gate
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, gate *auth.Gate) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		gate:      gate,
		validator: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	jobs, err := h.service.List(r.Context(), keyword)
	if err != nil {
		h.logger.Error("list jobs failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusOK, httpx.Envelope{
		Message: "Jobs found.",
		Jobs:    jobs,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Job not found.")
		return
	}

	httpx.OK(w, http.StatusOK, httpx.Envelope{
		Message: "Job found.",
		Job:     job,
	})
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	var req PostJobRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Fail(w, http.StatusBadRequest, "Bad request")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			httpx.Fail(w, http.StatusBadRequest, "Bad request")
			return
		}
		salary, _ := strconv.ParseInt(r.PostFormValue("salary"), 10, 64)
		experience, _ := strconv.Atoi(r.PostFormValue("experienceLevel"))
		positions, _ := strconv.Atoi(r.PostFormValue("position"))
		req = PostJobRequest{
			Title:           r.PostFormValue("title"),
			Description:     r.PostFormValue("description"),
			Requirements:    r.PostFormValue("requirements"),
			Salary:          salary,
			ExperienceLevel: experience,
			Location:        r.PostFormValue("location"),
			JobType:         r.PostFormValue("jobType"),
			Positions:       positions,
			Company:         r.PostFormValue("company"),
		}
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Something is missing.")
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	job, err := h.service.Post(r.Context(), req, userID)
	if err != nil {
		h.logger.Error("post job failed", slog.Any("error", err), slog.String("user_id", userID))
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusCreated, httpx.Envelope{
		Message: "New job created successfully.",
		Job:     job,
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	jobs, err := h.service.ListByCreator(r.Context(), userID)
	if err != nil {
		h.logger.Error("list admin jobs failed", slog.Any("error", err), slog.String("user_id", userID))
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusOK, httpx.Envelope{
		Message: "Jobs found.",
		Jobs:    jobs,
	})
}
