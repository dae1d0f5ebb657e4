package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportmatch/internal/model"
	"sportmatch/internal/service"
)

// MatchHandler handles match endpoints.
type MatchHandler struct {
	svc service.MatchService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(svc service.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// MatchRequest represents a request to join an activity.
type MatchRequest struct {
	ActivityID uint              `json:"activity_id" validate:"required"`
	Status     model.MatchStatus `json:"status"`
}

// CreateMatch godoc
// @Summary Join an activity
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body MatchRequest true "Match"
// @Success 200 {object} model.Match
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /matches/ [post]
func (h *MatchHandler) CreateMatch(c echo.Context) error {
	var req MatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	match, err := h.svc.CreateMatch(c.Request().Context(), req.ActivityID, CurrentUser(c).ID, req.Status)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, match)
}

// ListMatches godoc
// @Summary The caller's matches
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Match
// @Failure 401 {object} errors.ErrorResponse
// @Router /matches/ [get]
func (h *MatchHandler) ListMatches(c echo.Context) error {
	matches, err := h.svc.ListUserMatches(c.Request().Context(), CurrentUser(c).ID, pageFromQuery(c))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, matches)
}
