package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) DB() *gorm.DB { return r.db }

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).Where("service_id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := r.db.WithContext(ctx).Order("service_id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) GetStylists(ctx context.Context, serviceID int64) ([]domain.Stylist, error) {
	var stylists []domain.Stylist
	err := r.db.WithContext(ctx).
		Joins("JOIN stylist_services ss ON ss.stylist_id = stylists.id").
		Where("ss.service_id = ?", serviceID).
		Order("stylists.id").
		Find(&stylists).Error
	if err != nil {
		return nil, err
	}
	return stylists, nil
}

// StylistsByService loads the association sets for a batch of services
// in one query, keyed by service ID.
func (r *ServiceRepository) StylistsByService(ctx context.Context, serviceIDs []int64) (map[int64][]domain.Stylist, error) {
	out := make(map[int64][]domain.Stylist, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return out, nil
	}

	type row struct {
		domain.Stylist
		LinkedServiceID int64 `gorm:"column:linked_service_id"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.Stylist{}).
		Select("stylists.*, ss.service_id AS linked_service_id").
		Joins("JOIN stylist_services ss ON ss.stylist_id = stylists.id").
		Where("ss.service_id IN ?", serviceIDs).
		Order("stylists.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.LinkedServiceID] = append(out[r.LinkedServiceID], r.Stylist)
	}
	return out, nil
}

// ReplaceStylists clears the service's association set and links only the
// given stylist IDs, all inside one transaction.
func (r *ServiceRepository) ReplaceStylists(ctx context.Context, serviceID int64, stylistIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&domain.StylistService{}).Error; err != nil {
			return err
		}
		for _, sid := range stylistIDs {
			var cnt int64
			if err := tx.Model(&domain.Stylist{}).Where("id = ?", sid).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Create(&domain.StylistService{StylistID: sid, ServiceID: serviceID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the association rows and then the service row.
func (r *ServiceRepository) Delete(ctx context.Context, serviceID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&domain.StylistService{}).Error; err != nil {
			return err
		}
		return tx.Where("service_id = ?", serviceID).Delete(&domain.Service{}).Error
	})
}
