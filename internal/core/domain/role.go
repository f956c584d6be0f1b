package domain

import (
	"strings"
	"time"
)

// Role is the stored shape of a role. It is a superset of every API version:
// records written through v1 leave Description, Metadata and Version unset.
type Role struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	Permissions []Permission   `json:"permissions" bson:"permissions"`
	Description *string        `json:"description,omitempty" bson:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Version     int            `json:"version,omitempty" bson:"version,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updated_at"`
}

// UserRoles is the assignment record for one user. RoleIDs keeps the order in
// which the roles were granted.
type UserRoles struct {
	UserID    string    `json:"userId" bson:"_id"`
	RoleIDs   []string  `json:"roleIds" bson:"role_ids"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// References reports whether the record lists roleID.
func (ur *UserRoles) References(roleID string) bool {
	for _, id := range ur.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// ValidatePermissions enforces the permission-set invariants of a role: at
// least one entry, every entry known, no duplicates.
func ValidatePermissions(perms []Permission) error {
	if len(perms) == 0 {
		return Validation("Role must have at least one permission")
	}

	var invalid []string
	for _, p := range perms {
		if !p.IsValid() {
			invalid = append(invalid, string(p))
		}
	}
	if len(invalid) > 0 {
		return Validation("Invalid permissions: " + strings.Join(invalid, ", "))
	}

	seen := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		if _, dup := seen[p]; dup {
			return Validation("Duplicate permissions are not allowed")
		}
		seen[p] = struct{}{}
	}
	return nil
}
