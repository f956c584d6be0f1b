package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/access-control/internal/api/middleware"
	"github.com/99minutos/access-control/internal/api/response"
	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
	"github.com/99minutos/access-control/internal/core/version"
)

// RoleHandler serves the role resource for every API version. The version
// negotiated by middleware.Version decides the request fields honoured and
// the response shape.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// Create handles POST /{version}/roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        version  path      string             true  "API version (v1, v2)"
// @Param        body     body      createRoleRequest  true  "Role definition"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /{version}/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	v := middleware.APIVersion(c)
	role, err := h.service.CreateRole(c.Request().Context(), ports.CreateRoleInput{
		Version:     v,
		Name:        req.Name,
		Permissions: req.Permissions,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return err
	}

	location := collectionURL(c, "") + "/" + role.ID
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, response.Success(version.Present(role, v), response.StatusCreated, location))
}

// List handles GET /{version}/roles.
//
// @Summary      List every role
// @Tags         roles
// @Produce      json
// @Param        version  path      string  true  "API version (v1, v2)"
// @Success      200      {object}  response.Envelope
// @Router       /{version}/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}

	items := version.PresentAll(roles, middleware.APIVersion(c))
	return c.JSON(http.StatusOK, response.Success(response.NewPage(items), response.StatusSuccess, collectionURL(c, "")))
}

// Get handles GET /{version}/roles/{id}.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Param        version  path      string  true  "API version (v1, v2)"
// @Param        id       path      string  true  "Role id"
// @Success      200      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Router       /{version}/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.service.GetRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if role == nil {
		return domain.NotFound("Role not found")
	}

	self := collectionURL(c, "id") + "/" + role.ID
	return c.JSON(http.StatusOK, response.Success(version.Present(role, middleware.APIVersion(c)), response.StatusSuccess, self))
}

// Update handles PUT /{version}/roles/{id}.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        version  path      string             true  "API version (v1, v2)"
// @Param        id       path      string             true  "Role id"
// @Param        body     body      updateRoleRequest  true  "Fields to change"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /{version}/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	v := middleware.APIVersion(c)
	role, err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), ports.UpdateRoleInput{
		Version:     v,
		Name:        req.Name,
		Permissions: req.Permissions,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return err
	}

	self := collectionURL(c, "id") + "/" + role.ID
	return c.JSON(http.StatusOK, response.Success(version.Present(role, v), response.StatusUpdated, self))
}

// Delete handles DELETE /{version}/roles/{id}.
//
// @Summary      Delete a role
// @Description  Refused with 409 while any user still holds the role.
// @Tags         roles
// @Produce      json
// @Param        version  path      string  true  "API version (v1, v2)"
// @Param        id       path      string  true  "Role id"
// @Success      200      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /{version}/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("Role not found")
	}
	return c.JSON(http.StatusOK, response.Success(messageResponse{Message: "Role deleted successfully"}, response.StatusDeleted, ""))
}

// AssignToUser handles POST /{version}/roles/users/{userId}.
//
// @Summary      Replace the roles held by a user
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        version  path      string              true  "API version (v1, v2)"
// @Param        userId   path      string              true  "User id"
// @Param        body     body      assignRolesRequest  true  "Role names, e.g. {\"roles\":[\"admin\"]}"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Router       /{version}/roles/users/{userId} [post]
func (h *RoleHandler) AssignToUser(c echo.Context) error {
	var req assignRolesRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	var names []string
	if len(req.Roles) == 0 || req.Roles[0] != '[' || json.Unmarshal(req.Roles, &names) != nil {
		return domain.Validation("Invalid request").WithDetails("roles must be an array of strings")
	}

	ctx := c.Request().Context()
	userID := c.Param("userId")
	if err := h.service.AssignRolesByNames(ctx, userID, names); err != nil {
		return err
	}

	roles, err := h.service.GetUserRoles(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.Success(assignRolesResponse{
		Message: "Roles assigned successfully",
		Roles:   version.PresentAll(roles, middleware.APIVersion(c)),
	}, response.StatusUpdated, ""))
}

// UserRoles handles GET /{version}/roles/users/{userId}.
//
// @Summary      List the roles held by a user
// @Tags         roles
// @Produce      json
// @Param        version  path      string  true  "API version (v1, v2)"
// @Param        userId   path      string  true  "User id"
// @Success      200      {object}  response.Envelope
// @Router       /{version}/roles/users/{userId} [get]
func (h *RoleHandler) UserRoles(c echo.Context) error {
	roles, err := h.service.GetUserRoles(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	items := version.PresentAll(roles, middleware.APIVersion(c))
	return c.JSON(http.StatusOK, response.Success(response.NewPage(items), response.StatusSuccess, ""))
}

// UserPermissions handles GET /{version}/roles/users/{userId}/permissions.
//
// @Summary      Effective permissions of a user
// @Tags         roles
// @Produce      json
// @Param        version  path      string  true  "API version (v1, v2)"
// @Param        userId   path      string  true  "User id"
// @Success      200      {object}  response.Envelope
// @Router       /{version}/roles/users/{userId}/permissions [get]
func (h *RoleHandler) UserPermissions(c echo.Context) error {
	perms, err := h.service.GetUserPermissions(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.Success(permissionsResponse{
		Permissions: perms,
		Count:       len(perms),
	}, response.StatusSuccess, ""))
}
