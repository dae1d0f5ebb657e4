package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sportmatch/internal/model"
	"sportmatch/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	svc service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// BookingRequest represents a new booking.
type BookingRequest struct {
	FacilityID  uint                `json:"facility_id" validate:"required"`
	BookingDate time.Time           `json:"booking_date"`
	Duration    int                 `json:"duration" validate:"required,gt=0"`
	Status      model.BookingStatus `json:"status"`
}

// BookingStatusRequest carries the new booking status. The value is checked
// after the booking lookup so a missing booking answers 404 first.
type BookingStatusRequest struct {
	Status model.BookingStatus `json:"status"`
}

// CreateBooking godoc
// @Summary Book a facility for a user
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param booking body BookingRequest true "Booking"
// @Success 200 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/bookings/ [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req BookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.BookingDate.IsZero() {
		return badRequest("booking_date is required", "VALIDATION_ERROR")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), userID, service.BookingInput{
		FacilityID:  req.FacilityID,
		BookingDate: req.BookingDate,
		Duration:    req.Duration,
		Status:      req.Status,
	})
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// ListBookings godoc
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Booking
// @Router /bookings/ [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary Set a booking's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param status body BookingStatusRequest true "pending, confirmed or cancelled"
// @Success 200 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req BookingStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	booking, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}
