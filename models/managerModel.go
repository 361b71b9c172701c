package models

import "gorm.io/gorm"

// Manager accounts are seeded out-of-band; there is no registration
// endpoint. Passwords are stored and compared as plain text.
type Manager struct {
	gorm.Model
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangeCredentialsData struct {
	CurrentUser     string `json:"currentUser" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewUser         string `json:"newUser" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
