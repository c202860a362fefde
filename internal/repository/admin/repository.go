package admin

import (
	"context"
	"time"

	"musclesaction-store/internal/domain"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, email, passwordHash string) (*domain.Admin, error)
	CreateToken(ctx context.Context, token, adminID string, expiresAt time.Time) error
	FindToken(ctx context.Context, token string) (*domain.AdminToken, error)
	DeleteToken(ctx context.Context, token string) error
}
