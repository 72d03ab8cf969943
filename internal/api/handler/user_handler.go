package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/core/ports"
)

// UserHandler owns the admin-only user management routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=4"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=admin cashier"`
}

type updateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=admin cashier"`
	Password string `json:"password" form:"password" validate:"omitempty,min=4"`
}

// List returns all users without their password hashes.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create adds a user with an explicit role.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), session.Username, req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update rewrites username and role; a non-empty password is reset.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "User id"
// @Param        body  body      updateUserRequest true  "User details"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.Update(c.Request().Context(), session.Username, id, req.Username, req.Role, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a user. Deleting your own account is rejected before any
// store call.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), session.Username, id, session.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
