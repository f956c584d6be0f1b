package handler

import (
	"encoding/json"

	"github.com/99minutos/access-control/internal/core/domain"
)

// --- Request / Response types ---

// Permission and name rules are enforced by the role service so that their
// messages stay the same across transports.
type createRoleRequest struct {
	Name        string              `json:"name"`
	Permissions []domain.Permission `json:"permissions"`
	Description *string             `json:"description"`
	Metadata    map[string]any      `json:"metadata"`
}

type updateRoleRequest struct {
	Name        *string             `json:"name"`
	Permissions []domain.Permission `json:"permissions"`
	Description *string             `json:"description"`
	Metadata    map[string]any      `json:"metadata"`
}

// assignRolesRequest keeps roles raw so a non-array can be reported precisely.
type assignRolesRequest struct {
	Roles json.RawMessage `json:"roles"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type assignRolesResponse struct {
	Message string `json:"message"`
	Roles   []any  `json:"roles"`
}

type permissionsResponse struct {
	Permissions []domain.Permission `json:"permissions"`
	Count       int                 `json:"count"`
}
