package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
	"go.uber.org/zap"
)

type CreateUserDTO struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type UpdateUserDTO struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// Service manages the identity rows profiles hang off. Credentials are not
// kept here.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger.Named("identity")}
}

func (s *Service) List(ctx context.Context) ([]models.UserModel, error) {
	return store.List[models.UserModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.UserModel, pagination.Page, error) {
	return store.Page[models.UserModel](ctx, s.store, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.UserModel, error) {
	var m models.UserModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*models.UserModel, error) {
	var m models.UserModel
	if err := s.store.FindBy(ctx, &m, "username = ?", strings.TrimSpace(username)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Create registers an identity. A taken username surfaces as the storage
// engine's unique violation; see store.IsDuplicate.
func (s *Service) Create(ctx context.Context, dto *CreateUserDTO) (*models.UserModel, error) {
	m := models.UserModel{
		Username:  strings.TrimSpace(dto.Username),
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     strings.TrimSpace(dto.Email),
	}
	if err := s.store.Save(ctx, &m); err != nil {
		return nil, err
	}
	s.logger.Info("identity registered", zap.String("id", m.ID), zap.String("username", m.Username))
	return &m, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateUserDTO) (*models.UserModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.FirstName != nil {
		m.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		m.LastName = *dto.LastName
	}
	if dto.Email != nil {
		m.Email = strings.TrimSpace(*dto.Email)
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the identity together with its profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, &models.UserModel{Base: models.Base{ID: id}}); err != nil {
		return err
	}
	s.logger.Info("identity removed", zap.String("id", id))
	return nil
}
