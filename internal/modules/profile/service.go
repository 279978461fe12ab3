package profile

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
	"gorm.io/gorm"
)

var preloads = []string{"User", "Skills"}

type Service struct {
	store *store.Store
	files filestore.Storage
}

func NewService(st *store.Store, files filestore.Storage) *Service {
	return &Service{store: st, files: files}
}

// List returns profiles with their identity and skills loaded.
func (s *Service) List(ctx context.Context) ([]models.UserProfileModel, error) {
	return store.List[models.UserProfileModel](ctx, s.store, withRelations)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.UserProfileModel, pagination.Page, error) {
	return store.Page[models.UserProfileModel](ctx, s.store, q, withRelations)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.UserProfileModel, error) {
	var m models.UserProfileModel
	if err := s.store.Find(ctx, &m, id, preloads...); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetByUserID returns the profile owned by the identity userID.
func (s *Service) GetByUserID(ctx context.Context, userID string) (*models.UserProfileModel, error) {
	var m models.UserProfileModel
	if err := s.store.FindBy(ctx, &m, "user_id = ?", userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.GetByID(ctx, m.ID)
}

// DisplayName renders the owner's full name, or "" when there is no such
// profile.
func (s *Service) DisplayName(ctx context.Context, id string) (string, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return "", err
	}
	return m.String(), nil
}

// Create stores a profile for an existing identity together with its
// initial skills.
func (s *Service) Create(ctx context.Context, dto *CreateProfileDTO) (*models.UserProfileModel, error) {
	m := models.UserProfileModel{
		UserID: dto.UserID,
		Avatar: dto.Avatar,
		Title:  dto.Title,
		Bio:    dto.Bio,
		CV:     dto.CV,
	}
	skillIDs := dto.SkillIDs
	if skillIDs == nil {
		skillIDs = []string{}
	}
	if err := s.store.SaveProfile(ctx, &m, skillIDs); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, m.ID)
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateProfileDTO) (*models.UserProfileModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Avatar != nil {
		m.Avatar = *dto.Avatar
	}
	if dto.Title != nil {
		m.Title = *dto.Title
	}
	if dto.Bio != nil {
		m.Bio = *dto.Bio
	}
	if dto.CV != nil {
		m.CV = *dto.CV
	}
	var skillIDs []string
	if dto.SkillIDs != nil {
		skillIDs = *dto.SkillIDs
		if skillIDs == nil {
			skillIDs = []string{}
		}
	}
	if err := s.store.SaveProfile(ctx, m, skillIDs); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the profile. Its skills remain.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, &models.UserProfileModel{Base: models.Base{ID: id}})
}

// SetSkills replaces the profile's skill set.
func (s *Service) SetSkills(ctx context.Context, id string, skillIDs []string) error {
	return s.store.SetSkills(ctx, id, skillIDs)
}

func (s *Service) AddSkill(ctx context.Context, id, skillID string) error {
	return s.store.AddSkills(ctx, id, skillID)
}

func (s *Service) RemoveSkill(ctx context.Context, id, skillID string) error {
	return s.store.RemoveSkills(ctx, id, skillID)
}

// SetAvatar uploads the profile picture. Only images are accepted.
func (s *Service) SetAvatar(ctx context.Context, id, filename string, payload []byte) (*models.UserProfileModel, error) {
	return s.attach(ctx, id, filestore.ProfileAvatar, filename, payload, func(m *models.UserProfileModel, ref string) {
		m.Avatar = ref
	})
}

// SetCV uploads the downloadable CV document.
func (s *Service) SetCV(ctx context.Context, id, filename string, payload []byte) (*models.UserProfileModel, error) {
	return s.attach(ctx, id, filestore.ProfileCV, filename, payload, func(m *models.UserProfileModel, ref string) {
		m.CV = ref
	})
}

func (s *Service) attach(ctx context.Context, id string, field filestore.Field, filename string, payload []byte, set func(*models.UserProfileModel, string)) (*models.UserProfileModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	_, err = filestore.Attach(ctx, s.files, field, filename, payload, func(ref string) error {
		set(m, ref)
		return s.store.SaveProfile(ctx, m, nil)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func withRelations(db *gorm.DB) *gorm.DB {
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db
}
