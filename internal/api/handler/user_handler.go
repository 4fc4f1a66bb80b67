package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/users-service/internal/core/domain"
	"github.com/99minutos/users-service/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateFromPath handles POST /user/:username/:email/:password.
//
// @Summary      Create a user from path parameters
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        email     path      string  true  "Email"
// @Param        password  path      string  true  "Plaintext password"
// @Success      201       {object}  usernameResponse
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /user/{username}/{email}/{password} [post]
func (h *UserHandler) CreateFromPath(c echo.Context) error {
	return h.create(c, createUserRequest{
		Username: pathParam(c, "username"),
		Email:    pathParam(c, "email"),
		Password: pathParam(c, "password"),
	})
}

// CreateFromBody handles POST /user.
//
// @Summary      Create a user from a JSON body
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  usernameResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /user [post]
func (h *UserHandler) CreateFromBody(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return h.create(c, req)
}

func (h *UserHandler) create(c echo.Context, req createUserRequest) error {
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, usernameResponse{Username: user.Username})
}

// Get handles GET /user/:email.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  userResponse
// @Failure      404    {object}  userNotFoundResponse
// @Router       /user/{email} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByEmail(c.Request().Context(), pathParam(c, "email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, userNotFoundResponse{})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339Nano),
		IsActive:  user.IsActive,
	})
}

// List handles GET /users. An empty store answers 404 {"users": null}.
//
// @Summary      List all usernames
// @Tags         users
// @Produce      json
// @Success      200  {array}   usernameResponse
// @Failure      404  {object}  noUsersResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return c.JSON(http.StatusNotFound, noUsersResponse{})
	}

	resp := make([]usernameResponse, len(users))
	for i, u := range users {
		resp[i] = usernameResponse{Username: u.Username}
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /user/:email. Any authenticated user may delete any
// account.
//
// @Summary      Delete a user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  noteResponse
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  userNotFoundResponse
// @Router       /user/{email} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.service.DeleteByEmail(c.Request().Context(), pathParam(c, "email")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, userNotFoundResponse{})
		}
		return err
	}

	return c.JSON(http.StatusOK, noteResponse{Note: "delete success"})
}
