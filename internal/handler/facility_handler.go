package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportmatch/internal/service"
)

// FacilityHandler handles facility endpoints.
type FacilityHandler struct {
	svc service.FacilityService
}

// NewFacilityHandler creates a new facility handler.
func NewFacilityHandler(svc service.FacilityService) *FacilityHandler {
	return &FacilityHandler{svc: svc}
}

// FacilityRequest represents a new facility.
type FacilityRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=100"`
	SportID     *uint   `json:"sport_id"`
}

// FacilityUpdateRequest holds the fields to change.
type FacilityUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=100"`
	SportID     *uint   `json:"sport_id"`
}

// CreateFacility godoc
// @Summary Create facility
// @Tags facilities
// @Accept json
// @Produce json
// @Param facility body FacilityRequest true "Facility"
// @Success 201 {object} model.Facility
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /facilities/ [post]
func (h *FacilityHandler) CreateFacility(c echo.Context) error {
	var req FacilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	facility, err := h.svc.CreateFacility(c.Request().Context(), service.FacilityInput{
		Name:        req.Name,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		SportID:     req.SportID,
	})
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, facility)
}

// ListFacilities godoc
// @Summary List facilities
// @Tags facilities
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Facility
// @Router /facilities/ [get]
func (h *FacilityHandler) ListFacilities(c echo.Context) error {
	facilities, err := h.svc.ListFacilities(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, facilities)
}

// UpdateFacility godoc
// @Summary Partially update a facility
// @Tags facilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Facility ID"
// @Param facility body FacilityUpdateRequest true "Fields to change"
// @Success 200 {object} model.Facility
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /facilities/{id} [put]
func (h *FacilityHandler) UpdateFacility(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req FacilityUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	facility, err := h.svc.UpdateFacility(c.Request().Context(), id, service.FacilityPatch{
		Name:        req.Name,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		SportID:     req.SportID,
	})
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, facility)
}

// DeleteFacility godoc
// @Summary Delete a facility
// @Tags facilities
// @Security BearerAuth
// @Param id path int true "Facility ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /facilities/{id} [delete]
func (h *FacilityHandler) DeleteFacility(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteFacility(c.Request().Context(), id); err != nil {
		return RespondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
