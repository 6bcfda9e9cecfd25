package repository

import (
	"context"

	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
)

// UserRepository définit le port de persistance pour les comptes du personnel.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
