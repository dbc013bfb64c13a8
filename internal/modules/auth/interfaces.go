package auth

import (
	"context"

	"salonbooking/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type StylistDirectory interface {
	GetByUsername(ctx context.Context, username string) (*domain.Stylist, error)
}

type AdminDirectory interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

type TokenIssuer interface {
	GenerateToken(username, role string) (string, error)
}
