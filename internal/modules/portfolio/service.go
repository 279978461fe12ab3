package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/richtext"
	"github.com/folio-space/core/internal/store"
)

type Service struct {
	store    *store.Store
	files    filestore.Storage
	renderer richtext.Renderer
}

// NewService builds the portfolio service. A nil renderer leaves bodies as
// stored.
func NewService(st *store.Store, files filestore.Storage, renderer richtext.Renderer) *Service {
	if renderer == nil {
		renderer = richtext.Passthrough{}
	}
	return &Service{store: st, files: files, renderer: renderer}
}

func (s *Service) List(ctx context.Context) ([]models.PortfolioModel, error) {
	return store.List[models.PortfolioModel](ctx, s.store)
}

func (s *Service) ListActive(ctx context.Context) ([]models.PortfolioModel, error) {
	return store.ListActive[models.PortfolioModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.PortfolioModel, pagination.Page, error) {
	return store.Page[models.PortfolioModel](ctx, s.store, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.PortfolioModel, error) {
	var m models.PortfolioModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetBySlug returns the entry published under slug. Slugs are not unique;
// when several entries share one the first by name wins.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.PortfolioModel, error) {
	if slug == "" {
		return nil, nil
	}
	var m models.PortfolioModel
	if err := s.store.FindBy(ctx, &m, "slug = ?", slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Detail returns the active entry under slug with its body rendered.
func (s *Service) Detail(ctx context.Context, slug string) (*Detail, error) {
	m, err := s.GetBySlug(ctx, slug)
	if err != nil || m == nil {
		return nil, err
	}
	if !m.IsActive {
		return nil, nil
	}
	html, err := s.renderer.Render(m.Body)
	if err != nil {
		return nil, fmt.Errorf("render portfolio %s: %w", m.ID, err)
	}
	d := &Detail{PortfolioModel: *m, BodyHTML: html, URL: m.AbsoluteURL()}
	if s.files != nil && m.Image != "" {
		d.ImageURL = s.files.URL(m.Image)
	}
	return d, nil
}

// Create stores a new entry. Its slug is derived from Name.
func (s *Service) Create(ctx context.Context, dto *CreatePortfolioDTO) (*models.PortfolioModel, error) {
	m := models.PortfolioModel{
		Date:        dto.Date,
		Name:        dto.Name,
		Description: dto.Description,
		Body:        dto.Body,
		Image:       dto.Image,
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

// Update edits an entry. Renaming does not change the slug.
func (s *Service) Update(ctx context.Context, id string, dto *UpdatePortfolioDTO) (*models.PortfolioModel, error) {
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
	if dto.Description != nil {
		m.Description = *dto.Description
	}
	if dto.Body != nil {
		m.Body = *dto.Body
	}
	if dto.Image != nil {
		m.Image = *dto.Image
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) SetImage(ctx context.Context, id, filename string, payload []byte) (*models.PortfolioModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	_, err = filestore.Attach(ctx, s.files, filestore.PortfolioImage, filename, payload, func(ref string) error {
		m.Image = ref
		return s.store.Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, &models.PortfolioModel{Base: models.Base{ID: id}})
}
