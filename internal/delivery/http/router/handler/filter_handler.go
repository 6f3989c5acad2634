package handler

import (
	"log/slog"
	"net/http"

	"jobsearch/internal/delivery/http/middleware"
	"jobsearch/internal/delivery/http/response"
	"jobsearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FilterHandlerParams holds dependencies for FilterHandler, injected by Fx.
type FilterHandlerParams struct {
	fx.In

	FilterUC usecase.FilterUsecase
	Logger   *slog.Logger
}

// FilterHandler holds dependencies for saved-filter handlers
type FilterHandler struct {
	filterUC usecase.FilterUsecase
	logger   *slog.Logger
}

// NewFilterHandler is the constructor for FilterHandler
func NewFilterHandler(params FilterHandlerParams) *FilterHandler {
	return &FilterHandler{
		filterUC: params.FilterUC,
		logger:   params.Logger,
	}
}

// CreateFilter handles saving a new candidate filter
func (h *FilterHandler) CreateFilter(c echo.Context) error {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreateFilterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	filter, err := h.filterUC.CreateFilter(c.Request().Context(), recruiterID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, filter, "Filter saved successfully")
}

// ListFilters handles retrieving the recruiter's saved filters
func (h *FilterHandler) ListFilters(c echo.Context) error {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filters, err := h.filterUC.ListFilters(c.Request().Context(), recruiterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, filters, "Filters retrieved successfully")
}

// DeleteFilter handles removing one of the recruiter's saved filters
func (h *FilterHandler) DeleteFilter(c echo.Context) error {
	recruiterID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filterID, err := uuid.Parse(c.Param("filterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid filter ID")
	}

	if err := h.filterUC.DeleteFilter(c.Request().Context(), recruiterID, filterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Filter deleted"}, "Filter deleted successfully")
}
