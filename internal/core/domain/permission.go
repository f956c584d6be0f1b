package domain

// Permission is a closed enumeration of the actions a role can grant.
type Permission string

const (
	PermissionCreateUser  Permission = "create_user"
	PermissionReadUser    Permission = "read_user"
	PermissionUpdateUser  Permission = "update_user"
	PermissionDeleteUser  Permission = "delete_user"
	PermissionAssignRoles Permission = "assign_roles"
	PermissionManageRoles Permission = "manage_roles"
)

// AllPermissions lists every permission in canonical order.
var AllPermissions = []Permission{
	PermissionCreateUser,
	PermissionReadUser,
	PermissionUpdateUser,
	PermissionDeleteUser,
	PermissionAssignRoles,
	PermissionManageRoles,
}

// IsValid reports whether p belongs to AllPermissions.
func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}
