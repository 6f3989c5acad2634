package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"jobsearch/internal/delivery/http/response"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler holds dependencies for job-related handlers
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// CreateJob handles creating a new job posting
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req usecase.CreateJobInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	job, err := h.jobUC.CreateJob(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created successfully")
}

// GetJob handles retrieving a job posting by ID
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	job, err := h.jobUC.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, job, "Job retrieved successfully")
}

// SearchJobs handles job search with optional geo-radius refinement
func (h *JobHandler) SearchJobs(c echo.Context) error {
	input := &usecase.JobSearchInput{
		Search:   c.QueryParam("search"),
		PayType:  c.QueryParam("pay_type"),
		Location: c.QueryParam("location"),
	}

	if skills := c.QueryParam("skills"); skills != "" {
		input.SkillNames = splitAndTrim(skills)
	}

	var err error
	if input.MinSalary, err = parseOptionalFloat(c.QueryParam("min_salary")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid min_salary")
	}
	if input.MaxSalary, err = parseOptionalFloat(c.QueryParam("max_salary")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid max_salary")
	}

	radius, err := parseRadiusParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	input.Radius = radius

	results, err := h.jobUC.SearchJobs(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Jobs retrieved successfully")
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
