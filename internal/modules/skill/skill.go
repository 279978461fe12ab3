package skill

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
	"gorm.io/gorm"
)

type CreateSkillDTO struct {
	Name       string `json:"name"`
	Score      *int   `json:"score"`
	Image      string `json:"image"`
	IsKeySkill bool   `json:"is_key_skill"`
}

type UpdateSkillDTO struct {
	Name       *string `json:"name"`
	Score      *int    `json:"score"`
	Image      *string `json:"image"`
	IsKeySkill *bool   `json:"is_key_skill"`
}

type Service struct {
	store *store.Store
	files filestore.Storage
}

func NewService(st *store.Store, files filestore.Storage) *Service {
	return &Service{store: st, files: files}
}

func (s *Service) List(ctx context.Context) ([]models.SkillModel, error) {
	return store.List[models.SkillModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.SkillModel, pagination.Page, error) {
	return store.Page[models.SkillModel](ctx, s.store, q)
}

// KeySkills returns the skills flagged for the headline section.
func (s *Service) KeySkills(ctx context.Context) ([]models.SkillModel, error) {
	return store.List[models.SkillModel](ctx, s.store, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_key_skill = ?", true)
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.SkillModel, error) {
	var m models.SkillModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(ctx context.Context, dto *CreateSkillDTO) (*models.SkillModel, error) {
	m := models.SkillModel{
		Name:       dto.Name,
		Score:      models.DefaultSkillScore,
		Image:      dto.Image,
		IsKeySkill: dto.IsKeySkill,
	}
	if dto.Score != nil {
		m.Score = *dto.Score
	}
	if err := s.store.Save(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateSkillDTO) (*models.SkillModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.Score != nil {
		m.Score = *dto.Score
	}
	if dto.Image != nil {
		m.Image = *dto.Image
	}
	if dto.IsKeySkill != nil {
		m.IsKeySkill = *dto.IsKeySkill
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the skill and its profile associations.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, &models.SkillModel{Base: models.Base{ID: id}})
}

// SetImage uploads an icon for the skill and stores its reference.
func (s *Service) SetImage(ctx context.Context, id, filename string, payload []byte) (*models.SkillModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	_, err = filestore.Attach(ctx, s.files, filestore.SkillImage, filename, payload, func(ref string) error {
		m.Image = ref
		return s.store.Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
