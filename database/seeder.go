package database

import (
	"errors"
	"fiber-ims/models"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
}

// SeedUsers creates one account per role so a fresh database is
// usable immediately. Passwords are bcrypt hashed, never stored in
// clear text.
func SeedUsers(db *gorm.DB) {
	users := []struct {
		Username string
		Password string
		Role     string
	}{
		{Username: "admin", Password: "admin123", Role: models.RoleAdmin},
		{Username: "manager", Password: "manager123", Role: models.RoleManager},
		{Username: "auditor", Password: "auditor123", Role: models.RoleAuditor},
	}

	for _, u := range users {
		var existing models.User
		err := db.Where("username = ?", u.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Unexpected DB error: %v", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}

		if err := db.Create(&models.User{
			Username: u.Username,
			Password: string(hash),
			Role:     u.Role,
		}).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Username, err)
		}
	}
}
