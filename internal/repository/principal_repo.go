package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

// PrincipalRepository resolves an authenticated (username, role) pair to
// a live account row. Lookup order is admins, stylists, users — the same
// precedence the login path uses — and both username and role must match
// exactly, so a stale token for a renamed or deleted account fails.
type PrincipalRepository struct {
	db *gorm.DB
}

func NewPrincipalRepository(db *gorm.DB) *PrincipalRepository {
	return &PrincipalRepository{db: db}
}

func (r *PrincipalRepository) Resolve(ctx context.Context, username, role string) (*domain.Principal, error) {
	var a domain.Admin
	err := r.db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		First(&a).Error
	if err == nil {
		return &domain.Principal{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role, Kind: domain.KindAdmin}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var s domain.Stylist
	err = r.db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		First(&s).Error
	if err == nil {
		return &domain.Principal{ID: s.ID, Username: s.Username, Email: s.Email, Role: s.Role, Kind: domain.KindStylist}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var u domain.User
	err = r.db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		First(&u).Error
	if err == nil {
		return &domain.Principal{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, Kind: domain.KindClient}, nil
	}
	return nil, err
}
