package version

import (
	"time"

	"github.com/99minutos/access-control/internal/core/domain"
)

// RoleV1 is the v1 response shape of a role.
type RoleV1 struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Permissions []domain.Permission `json:"permissions"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// RoleV2 is the v2 response shape of a role.
type RoleV2 struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Permissions []domain.Permission `json:"permissions"`
	Description *string             `json:"description,omitempty"`
	Metadata    map[string]any      `json:"metadata"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Version     int                 `json:"version"`
}

// ToV1 drops the fields v1 does not know about.
func ToV1(r RoleV2) RoleV1 {
	return RoleV1{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToV2 lifts a v1 role, synthesising version 1, no description and empty metadata.
func ToV2(r RoleV1) RoleV2 {
	return RoleV2{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     1,
		Description: nil,
		Metadata:    map[string]any{},
	}
}

// Present renders a stored role in the shape of v. Stored v2 fields are kept;
// missing ones are synthesised the way ToV2 does.
func Present(role *domain.Role, v Version) any {
	if role == nil {
		return nil
	}
	base := RoleV1{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: role.Permissions,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
	if v == V1 {
		return base
	}

	out := ToV2(base)
	if role.Version > 0 {
		out.Version = role.Version
	}
	if role.Description != nil {
		out.Description = role.Description
	}
	if role.Metadata != nil {
		out.Metadata = role.Metadata
	}
	return out
}

// PresentAll renders every role in the shape of v.
func PresentAll(roles []*domain.Role, v Version) []any {
	out := make([]any, len(roles))
	for i, r := range roles {
		out[i] = Present(r, v)
	}
	return out
}
