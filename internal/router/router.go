package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sportmatch/internal/handler"
	"sportmatch/internal/logger"
	"sportmatch/internal/service"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Sport    *handler.SportHandler
	Facility *handler.FacilityHandler
	Activity *handler.ActivityHandler
	Match    *handler.MatchHandler
	Booking  *handler.BookingHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, authService service.AuthService, h Handlers, log *logger.Logger) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log.Named("http")))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authn := Authenticate(authService)
	admin := RequireAdmin(authService)

	e.POST("/token", h.Auth.Token)
	e.GET("/me", h.Auth.Me, authn)

	e.POST("/users", h.User.CreateUser)
	e.GET("/users", h.User.ListUsers)
	e.GET("/users/:id", h.User.GetUser)
	e.POST("/users/:id/bookings", h.Booking.CreateBooking)

	e.POST("/sports", h.Sport.CreateSport)
	e.GET("/sports", h.Sport.ListSports)

	e.POST("/facilities", h.Facility.CreateFacility)
	e.GET("/facilities", h.Facility.ListFacilities)
	e.PUT("/facilities/:id", h.Facility.UpdateFacility, authn, admin)
	e.DELETE("/facilities/:id", h.Facility.DeleteFacility, authn, admin)

	e.POST("/activities", h.Activity.CreateActivity, authn)
	e.GET("/activities", h.Activity.ListActivities)
	e.GET("/activities/my", h.Activity.ListMyActivities, authn)

	e.POST("/matches", h.Match.CreateMatch, authn)
	e.GET("/matches", h.Match.ListMatches, authn)

	e.GET("/bookings", h.Booking.ListBookings)

	adminGroup := e.Group("/admin", authn, admin)
	adminGroup.GET("/users", h.User.ListUsers)
	adminGroup.PATCH("/bookings/:id/status", h.Booking.UpdateStatus)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
