package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shareprompts/internal/errors"
	"shareprompts/internal/service"
)

// PromptHandler bundles the prompt HTTP handlers.
type PromptHandler struct {
	svc service.PromptService
}

// NewPromptHandler creates the handler layer.
func NewPromptHandler(svc service.PromptService) *PromptHandler {
	return &PromptHandler{svc: svc}
}

// CreatePromptRequest represents the create payload.
type CreatePromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	UserID string `json:"userId" validate:"required,uuid"`
	Tag    string `json:"tag" validate:"required"`
}

// UpdatePromptRequest represents the update payload. The creator cannot be
// changed through this endpoint.
type UpdatePromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Tag    string `json:"tag" validate:"required"`
}

// ListPrompts godoc
// @Summary List all prompts with their creators
// @Tags prompts
// @Produce json
// @Success 200 {array} model.Prompt
// @Failure 500 {object} errors.ErrorResponse
// @Router /prompt [get]
func (h *PromptHandler) ListPrompts(c echo.Context) error {
	prompts, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prompts)
}

// GetPrompt godoc
// @Summary Get a prompt by id
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} model.Prompt
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /prompt/{id} [get]
func (h *PromptHandler) GetPrompt(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}
	prompt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prompt)
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Prompt payload"
// @Success 201 {object} model.Prompt
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /prompt/new [post]
func (h *PromptHandler) CreatePrompt(c echo.Context) error {
	var req CreatePromptRequest
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

	creatorID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid userId",
			Code:  "INVALID_UUID",
		})
	}

	prompt, err := h.svc.Create(c.Request().Context(), creatorID, req.Prompt, req.Tag)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, prompt)
}

// UpdatePrompt godoc
// @Summary Update a prompt's text and tag
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body UpdatePromptRequest true "Prompt payload"
// @Success 200 {object} model.Prompt
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /prompt/{id} [patch]
func (h *PromptHandler) UpdatePrompt(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdatePromptRequest
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

	prompt, err := h.svc.Update(c.Request().Context(), id, req.Prompt, req.Tag)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, prompt)
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Description Idempotent: deleting an id that no longer exists still returns 200.
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /prompt/{id} [delete]
func (h *PromptHandler) DeletePrompt(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}

	err = h.svc.Delete(c.Request().Context(), id)
	// A missing id still reads as success to the caller.
	if err != nil && err != errors.ErrPromptNotFound {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "prompt deleted"})
}
