package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sportmatch/internal/service"
)

// ActivityHandler handles activity endpoints.
type ActivityHandler struct {
	svc service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ActivityRequest represents a new activity and the usernames to invite.
type ActivityRequest struct {
	SportID              uint      `json:"sport_id" validate:"required"`
	Description          string    `json:"description" validate:"required"`
	ActivityDate         time.Time `json:"activity_date"`
	Location             string    `json:"location" validate:"required,max=255"`
	ParticipantUsernames []string  `json:"participant_usernames" validate:"omitempty,dive,required"`
}

// CreateActivity godoc
// @Summary Create an activity and invite participants
// @Description Unknown participant usernames are skipped.
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param activity body ActivityRequest true "Activity"
// @Success 200 {object} model.Activity
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /activities/ [post]
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var req ActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ActivityDate.IsZero() {
		return badRequest("activity_date is required", "VALIDATION_ERROR")
	}

	activity, err := h.svc.CreateActivityWithInvites(c.Request().Context(), CurrentUser(c).ID, service.CreateActivityInput{
		SportID:              req.SportID,
		Description:          req.Description,
		ActivityDate:         req.ActivityDate,
		Location:             req.Location,
		ParticipantUsernames: req.ParticipantUsernames,
	})
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}

// ListActivities godoc
// @Summary List activities
// @Tags activities
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Activity
// @Router /activities/ [get]
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	activities, err := h.svc.ListActivities(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, activities)
}

// ListMyActivities godoc
// @Summary Activities the caller created or was invited to
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Activity
// @Failure 401 {object} errors.ErrorResponse
// @Router /activities/my [get]
func (h *ActivityHandler) ListMyActivities(c echo.Context) error {
	activities, err := h.svc.ListMyActivities(c.Request().Context(), CurrentUser(c).ID)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, activities)
}
