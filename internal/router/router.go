package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shareprompts/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	promptHandler *handler.PromptHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Prompt routes
	api.GET("/prompt", promptHandler.ListPrompts)
	api.POST("/prompt/new", promptHandler.CreatePrompt)
	api.GET("/prompt/:id", promptHandler.GetPrompt)
	api.PATCH("/prompt/:id", promptHandler.UpdatePrompt)
	api.DELETE("/prompt/:id", promptHandler.DeletePrompt)

	// User routes
	api.POST("/users", userHandler.ProvisionUser)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/users/:id/posts", userHandler.ListUserPosts)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
