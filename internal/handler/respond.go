package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sportmatch/internal/errors"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// UserContextKey is where the authenticated *model.User is stored on the echo context.
const UserContextKey = "user"

// RespondError converts err into an echo HTTP error with a standard body.
// Unauthorized responses carry the bearer challenge header.
func RespondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(UserContextKey).(*model.User)
	return user
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Detail: message,
		Code:   code,
	})
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	return nil
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, badRequest("invalid "+name, "INVALID_ID")
	}
	return uint(id), nil
}

// pageFromQuery reads skip and limit, defaulting to the first 100 rows.
func pageFromQuery(c echo.Context) repository.Page {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return repository.NewPage(skip, limit)
}
