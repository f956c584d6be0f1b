package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/access-control/internal/api/response"
	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.UserRole(req.Role),
	})
	if err != nil {
		return err
	}

	location := absURL(c, "/users/"+user.ID)
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, response.Success(user, response.StatusCreated, location))
}

// List handles GET /users.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Param        page      query     int  false  "Page number (default 1)"
// @Param        pageSize  query     int  false  "Page size (default 10)"
// @Success      200       {object}  response.Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page := positiveQueryInt(c, "page", defaultPage)
	pageSize := positiveQueryInt(c, "pageSize", defaultPageSize)
	skip := (page - 1) * pageSize

	var (
		users []*domain.User
		total int
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		users, err = h.service.GetAllUsers(ctx, skip, pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.service.GetUserCount(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.Paginated(users, page, pageSize, total, absURL(c, "/users")))
}

// Get handles GET /users/{id}.
//
// @Summary      Get a user
// @Description  Deactivated users are still returned.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("User not found")
	}
	return c.JSON(http.StatusOK, response.Success(user, response.StatusSuccess, absURL(c, "/users/"+user.ID)))
}

// Update handles PUT /users/{id}.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateUserInput{Name: req.Name, Email: req.Email}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		in.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		in.Status = &status
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.Success(user, response.StatusUpdated, absURL(c, "/users/"+user.ID)))
}

// Delete handles DELETE /users/{id}. The user is deactivated, not removed.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.service.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFound("User not found")
	}
	return c.JSON(http.StatusOK, response.Success(deactivateUserResponse{
		Message: "User deactivated successfully",
		User:    user,
	}, response.StatusDeactivated, ""))
}

// positiveQueryInt parses a query parameter, falling back to def when it is
// missing, not a number or below 1.
func positiveQueryInt(c echo.Context, name string, def int) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n < 1 {
		return def
	}
	return n
}
