package repo

import "github.com/hidestyle/storefront/internal/models"

// UserRepository defines the interface for admin account operations.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
