package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

// Authorize godoc
// @Summary exchange credentials for an access token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body model.AuthRequest true "credentials"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/authorize [post]
func (h *Handler) Authorize(c echo.Context) error {
	var req model.AuthRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Users.Authorize(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "authorized", "auth", resp)
}

// RegisterUser godoc
// @Summary register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.UserCreateRequest true "user"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/users [post]
func (h *Handler) RegisterUser(c echo.Context) error {
	var req model.UserCreateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, err := h.svc.Users.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "user created", users.single, user)
}

// GetUser godoc
// @Summary get a user
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/users/{id} [get]
func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.svc.Users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "user retrieved", users.single, user)
}

// ListUsers godoc
// @Summary list users
// @Tags users
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(c echo.Context) error {
	limit, err := listLimit(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Users.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "users retrieved", users.plural, list)
}
