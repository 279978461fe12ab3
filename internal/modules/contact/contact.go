package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
	"go.uber.org/zap"
)

// CreateContactDTO is what the contact form posts.
type CreateContactDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type UpdateContactDTO struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

type Service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger.Named("contact")}
}

// List returns messages oldest first.
func (s *Service) List(ctx context.Context) ([]models.ContactProfileModel, error) {
	return store.List[models.ContactProfileModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.ContactProfileModel, pagination.Page, error) {
	return store.Page[models.ContactProfileModel](ctx, s.store, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.ContactProfileModel, error) {
	var m models.ContactProfileModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Create records a new message. The timestamp is assigned on insert.
func (s *Service) Create(ctx context.Context, dto *CreateContactDTO) (*models.ContactProfileModel, error) {
	m := models.ContactProfileModel{
		Name:    strings.TrimSpace(dto.Name),
		Email:   strings.TrimSpace(dto.Email),
		Message: dto.Message,
	}
	if err := s.store.Save(ctx, &m); err != nil {
		return nil, err
	}
	s.logger.Info("contact message received", zap.String("id", m.ID), zap.String("email", m.Email))
	return &m, nil
}

// Update edits a message. The original timestamp is kept.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateContactDTO) (*models.ContactProfileModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Name != nil {
		m.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Email != nil {
		m.Email = strings.TrimSpace(*dto.Email)
	}
	if dto.Message != nil {
		m.Message = *dto.Message
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, &models.ContactProfileModel{Base: models.Base{ID: id}})
}
