package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sneha-510/smart-coalmine-system/internal/model"
	"github.com/sneha-510/smart-coalmine-system/internal/permission"
)

// Seed inserts the default accounts when the users table is empty,
// so a fresh deployment is immediately usable.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		fullName string
		email    string
		password string
		role     string
	}{
		{"Admin User", "admin@mine.com", "admin123", permission.RoleAdmin},
		{"Worker One", "worker1@mine.com", "worker123", permission.RoleWorker},
		{"Auditor One", "auditor1@mine.com", "auditor123", permission.RoleAuditor},
	}

	for _, d := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default password: %w", err)
		}
		user := model.User{
			FullName:     d.fullName,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", d.email, err)
		}
	}

	logger.Info("seeded default accounts", zap.Int("count", len(defaults)))
	return nil
}
