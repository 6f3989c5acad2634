package handler

import (
	"log/slog"
	"net/http"

	"jobsearch/internal/delivery/http/response"
	"jobsearch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CandidateHandlerParams holds dependencies for CandidateHandler, injected by Fx.
type CandidateHandlerParams struct {
	fx.In

	CandidateUC usecase.CandidateUsecase
	Logger      *slog.Logger
}

// CandidateHandler holds dependencies for candidate search handlers
type CandidateHandler struct {
	candidateUC usecase.CandidateUsecase
	logger      *slog.Logger
}

// NewCandidateHandler is the constructor for CandidateHandler
func NewCandidateHandler(params CandidateHandlerParams) *CandidateHandler {
	return &CandidateHandler{
		candidateUC: params.CandidateUC,
		logger:      params.Logger,
	}
}

// SearchCandidates handles recruiter-side candidate search
func (h *CandidateHandler) SearchCandidates(c echo.Context) error {
	input := &usecase.CandidateSearchInput{
		Skill:    c.QueryParam("skill"),
		Location: c.QueryParam("location"),
		Project:  c.QueryParam("project"),
	}

	radius, err := parseRadiusParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	input.Radius = radius

	results, err := h.candidateUC.SearchCandidates(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Candidates retrieved successfully")
}
