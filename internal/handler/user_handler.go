package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shareprompts/internal/errors"
	"shareprompts/internal/model"
	"shareprompts/internal/service"
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	users   service.UserService
	prompts service.PromptService
}

// NewUserHandler creates the handler layer.
func NewUserHandler(users service.UserService, prompts service.PromptService) *UserHandler {
	return &UserHandler{users: users, prompts: prompts}
}

// ProvisionUserRequest represents the provisioning payload sent after a
// successful sign-in at the identity provider.
type ProvisionUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Image    string `json:"image"`
}

// UserPostsResponse wraps a user's prompts.
type UserPostsResponse struct {
	Data []model.Prompt `json:"data"`
}

// ProvisionUser godoc
// @Summary Provision a user account
// @Description Find-or-create by email; repeated calls return the same user.
// @Tags users
// @Accept json
// @Produce json
// @Param request body ProvisionUserRequest true "User payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) ProvisionUser(c echo.Context) error {
	var req ProvisionUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.users.Provision(c.Request().Context(), req.Email, req.Username, req.Image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}
	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// ListUserPosts godoc
// @Summary List the prompts created by a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserPostsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/posts [get]
func (h *UserHandler) ListUserPosts(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}
	prompts, err := h.prompts.ListByCreator(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, UserPostsResponse{Data: prompts})
}
