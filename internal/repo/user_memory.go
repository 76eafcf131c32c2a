package repo

import (
	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}}
}

func (r *InMemoryUserRepository) CreateUser(user models.User) (models.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return models.User{}, ErrUserExists
		}
	}
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
