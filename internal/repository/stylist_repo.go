package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

type StylistRepository struct {
	db *gorm.DB
}

func NewStylistRepository(db *gorm.DB) *StylistRepository {
	return &StylistRepository{db: db}
}

func (r *StylistRepository) DB() *gorm.DB { return r.db }

// Create inserts the stylist and its service associations atomically.
// Fails before commit if any referenced service is missing.
func (r *StylistRepository) Create(ctx context.Context, s *domain.Stylist, serviceIDs []int64) error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}
		return linkServices(tx, s.ID, serviceIDs)
	})
}

func (r *StylistRepository) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	var s domain.Stylist
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StylistRepository) GetByUsername(ctx context.Context, username string) (*domain.Stylist, error) {
	var s domain.Stylist
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll returns every stylist; publicOnly restricts to active, verified ones.
func (r *StylistRepository) GetAll(ctx context.Context, publicOnly bool) ([]domain.Stylist, error) {
	q := r.db.WithContext(ctx).Order("id")
	if publicOnly {
		q = q.Where("is_active = ? AND verified = ?", true, true)
	}
	var stylists []domain.Stylist
	if err := q.Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *StylistRepository) SearchBySpecialization(ctx context.Context, specialization string) ([]domain.Stylist, error) {
	var stylists []domain.Stylist
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND verified = ?", true, true).
		Where("LOWER(specialization) LIKE ?", "%"+strings.ToLower(specialization)+"%").
		Order("id").
		Find(&stylists).Error
	if err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *StylistRepository) Update(ctx context.Context, s *domain.Stylist) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// ReplaceServices clears the stylist's association set and links only the
// given service IDs. All-or-nothing: a missing service aborts the whole
// replacement before commit.
func (r *StylistRepository) ReplaceServices(ctx context.Context, stylistID int64, serviceIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", stylistID).Delete(&domain.StylistService{}).Error; err != nil {
			return err
		}
		return linkServices(tx, stylistID, serviceIDs)
	})
}

func (r *StylistRepository) GetServices(ctx context.Context, stylistID int64) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Joins("JOIN stylist_services ss ON ss.service_id = services.service_id").
		Where("ss.stylist_id = ?", stylistID).
		Order("services.service_id").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// ServicesByStylist loads the service sets for a batch of stylists in
// one query, keyed by stylist ID.
func (r *StylistRepository) ServicesByStylist(ctx context.Context, stylistIDs []int64) (map[int64][]domain.Service, error) {
	out := make(map[int64][]domain.Service, len(stylistIDs))
	if len(stylistIDs) == 0 {
		return out, nil
	}

	type row struct {
		domain.Service
		LinkedStylistID int64 `gorm:"column:linked_stylist_id"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Select("services.*, ss.stylist_id AS linked_stylist_id").
		Joins("JOIN stylist_services ss ON ss.service_id = services.service_id").
		Where("ss.stylist_id IN ?", stylistIDs).
		Order("services.service_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.LinkedStylistID] = append(out[r.LinkedStylistID], r.Service)
	}
	return out, nil
}

func (r *StylistRepository) OffersService(ctx context.Context, stylistID, serviceID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.StylistService{}).
		Where("stylist_id = ? AND service_id = ?", stylistID, serviceID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Delete removes the stylist, its associations and its bookings. No
// booking history survives a stylist removal.
func (r *StylistRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", id).Delete(&domain.StylistService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("stylist_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Stylist{}, id).Error
	})
}

func linkServices(tx *gorm.DB, stylistID int64, serviceIDs []int64) error {
	for _, sid := range serviceIDs {
		var cnt int64
		if err := tx.Model(&domain.Service{}).Where("service_id = ?", sid).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(&domain.StylistService{StylistID: stylistID, ServiceID: sid}).Error; err != nil {
			return err
		}
	}
	return nil
}
