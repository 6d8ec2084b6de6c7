package configs

import (
	"log"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"golang.org/x/crypto/bcrypt"
)

// Creates the initial staff account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      "staff",
	}
	return db.Create(&admin).Error
}
