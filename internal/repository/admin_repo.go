package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) DB() *gorm.DB { return r.db }

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var a domain.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Admin{}, id).Error
}
