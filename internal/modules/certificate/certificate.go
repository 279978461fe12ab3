package certificate

import (
	"context"
	"errors"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
)

type CreateCertificateDTO struct {
	Date        *time.Time `json:"date"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsActive    *bool      `json:"is_active"`
}

type UpdateCertificateDTO struct {
	Date        *time.Time `json:"date"`
	Name        *string    `json:"name"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	IsActive    *bool      `json:"is_active"`
}

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns certificates in the order they were added.
func (s *Service) List(ctx context.Context) ([]models.CertificateModel, error) {
	return store.List[models.CertificateModel](ctx, s.store)
}

func (s *Service) ListActive(ctx context.Context) ([]models.CertificateModel, error) {
	return store.ListActive[models.CertificateModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.CertificateModel, pagination.Page, error) {
	return store.Page[models.CertificateModel](ctx, s.store, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.CertificateModel, error) {
	var m models.CertificateModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(ctx context.Context, dto *CreateCertificateDTO) (*models.CertificateModel, error) {
	m := models.CertificateModel{
		Date:        dto.Date,
		Name:        dto.Name,
		Title:       dto.Title,
		Description: dto.Description,
		IsActive:    true,
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	if err := s.store.Save(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateCertificateDTO) (*models.CertificateModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Date != nil {
		m.Date = dto.Date
	}
	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.Title != nil {
		m.Title = *dto.Title
	}
	if dto.Description != nil {
		m.Description = *dto.Description
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, &models.CertificateModel{Base: models.Base{ID: id}})
}
