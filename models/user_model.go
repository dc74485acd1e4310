package models

// Roles checked by the route middleware.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Warehouse Manager"
	RoleAuditor = "Auditor"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash
	Role     string `json:"role"`
}
