package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportmatch/internal/service"
)

// SportHandler handles sport endpoints.
type SportHandler struct {
	svc service.SportService
}

// NewSportHandler creates a new sport handler.
func NewSportHandler(svc service.SportService) *SportHandler {
	return &SportHandler{svc: svc}
}

// SportRequest represents a new sport.
type SportRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreateSport godoc
// @Summary Create sport
// @Tags sports
// @Accept json
// @Produce json
// @Param sport body SportRequest true "Sport"
// @Success 201 {object} model.Sport
// @Failure 400 {object} errors.ErrorResponse
// @Router /sports/ [post]
func (h *SportHandler) CreateSport(c echo.Context) error {
	var req SportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sport, err := h.svc.CreateSport(c.Request().Context(), req.Name)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, sport)
}

// ListSports godoc
// @Summary List sports
// @Tags sports
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Sport
// @Router /sports/ [get]
func (h *SportHandler) ListSports(c echo.Context) error {
	sports, err := h.svc.ListSports(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, sports)
}
