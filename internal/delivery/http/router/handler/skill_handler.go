package handler

import (
	"log/slog"
	"net/http"

	"jobsearch/internal/delivery/http/response"
	"jobsearch/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SkillHandlerParams holds dependencies for SkillHandler, injected by Fx.
type SkillHandlerParams struct {
	fx.In

	SkillRepo repository.SkillRepository
	Logger    *slog.Logger
}

// SkillHandler exposes the read-only skill catalogue.
type SkillHandler struct {
	skillRepo repository.SkillRepository
	logger    *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler
func NewSkillHandler(params SkillHandlerParams) *SkillHandler {
	return &SkillHandler{
		skillRepo: params.SkillRepo,
		logger:    params.Logger,
	}
}

// ListSkills handles retrieving the full skill catalogue
func (h *SkillHandler) ListSkills(c echo.Context) error {
	skills, err := h.skillRepo.ListSkills(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, skills, "Skills retrieved successfully")
}
