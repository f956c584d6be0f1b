package domain

import "time"

// UserRole is the flat role tag carried on a user record. It is unrelated to
// the Role entity, which is granted through assignment records.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// IsValid reports whether r is one of the known user role tags.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// UserStatus represents the lifecycle state of a user.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// IsValid reports whether s is a known status.
func (s UserStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is never physically removed; deletion flips Status to inactive and
// stamps DeletedAt.
type User struct {
	ID        string     `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Role      UserRole   `json:"role" bson:"role"`
	Status    UserStatus `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deleted_at,omitempty"`
}

// IsZero reports whether u carries no stored data at all.
func (u *User) IsZero() bool {
	return u == nil || (u.ID == "" && u.Email == "" && u.CreatedAt.IsZero())
}
