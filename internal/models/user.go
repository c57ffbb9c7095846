package models

// Role represents the account roles known to the gateway.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Roles lists every accepted role in display order.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleStudent}

// User is a login account.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// UserPayload is the body of user create/update calls. Password is omitted
// when unchanged; Email and Role are omitted in self-service saves.
type UserPayload struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,mailbox"`
	Username string  `json:"username" validate:"required,username"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"role,omitempty" validate:"omitempty,oneof=ADMIN TEACHER STUDENT"`
}
