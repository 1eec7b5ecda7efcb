package entity

// Role IDs carried in access token claims. Users and roles are managed by the auth service.
const (
	RoleIDAdmin = 1
	RoleIDUser  = 2
)
