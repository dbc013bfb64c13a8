package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) List(ctx context.Context) ([]ServiceWithStylists, error) {
	all, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(all))
	for _, svc := range all {
		ids = append(ids, svc.ServiceID)
	}
	byService, err := s.services.StylistsByService(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceWithStylists, 0, len(all))
	for _, svc := range all {
		stylists := byService[svc.ServiceID]
		if stylists == nil {
			stylists = []domain.Stylist{}
		}
		out = append(out, ServiceWithStylists{Service: svc, Stylists: stylists})
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ServiceWithStylists, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stylists, err := s.services.GetStylists(ctx, id)
	if err != nil {
		return nil, err
	}
	if stylists == nil {
		stylists = []domain.Stylist{}
	}

	return &ServiceWithStylists{Service: *svc, Stylists: stylists}, nil
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	}

	if err := s.services.Create(ctx, svc); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return svc, nil
}

// Update applies the present fields and, when a stylist list is given,
// replaces the association set atomically. A missing stylist in the
// list aborts the whole replacement.
func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*ServiceWithStylists, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}

	if err := s.services.Update(ctx, svc); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if req.StylistIDs != nil {
		if err := s.services.ReplaceStylists(ctx, id, *req.StylistIDs); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.services.Delete(ctx, id)
}
