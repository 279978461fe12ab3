package testimonial

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
)

type CreateTestimonialDTO struct {
	Thumbnail string `json:"thumbnail"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Quote     string `json:"quote"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateTestimonialDTO struct {
	Thumbnail *string `json:"thumbnail"`
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Quote     *string `json:"quote"`
	IsActive  *bool   `json:"is_active"`
}

type Service struct {
	store *store.Store
	files filestore.Storage
}

func NewService(st *store.Store, files filestore.Storage) *Service {
	return &Service{store: st, files: files}
}

func (s *Service) List(ctx context.Context) ([]models.TestimonialModel, error) {
	return store.List[models.TestimonialModel](ctx, s.store)
}

// ListActive returns the testimonials shown on the public site.
func (s *Service) ListActive(ctx context.Context) ([]models.TestimonialModel, error) {
	return store.ListActive[models.TestimonialModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.TestimonialModel, pagination.Page, error) {
	return store.Page[models.TestimonialModel](ctx, s.store, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.TestimonialModel, error) {
	var m models.TestimonialModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(ctx context.Context, dto *CreateTestimonialDTO) (*models.TestimonialModel, error) {
	m := models.TestimonialModel{
		Thumbnail: dto.Thumbnail,
		Name:      dto.Name,
		Role:      dto.Role,
		Quote:     dto.Quote,
		IsActive:  true,
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	if err := s.store.Save(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateTestimonialDTO) (*models.TestimonialModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Thumbnail != nil {
		m.Thumbnail = *dto.Thumbnail
	}
	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.Role != nil {
		m.Role = *dto.Role
	}
	if dto.Quote != nil {
		m.Quote = *dto.Quote
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
	return s.store.Delete(ctx, &models.TestimonialModel{Base: models.Base{ID: id}})
}

// SetThumbnail uploads the author's picture. Only images are accepted.
func (s *Service) SetThumbnail(ctx context.Context, id, filename string, payload []byte) (*models.TestimonialModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	_, err = filestore.Attach(ctx, s.files, filestore.TestimonialThumbnail, filename, payload, func(ref string) error {
		m.Thumbnail = ref
		return s.store.Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
