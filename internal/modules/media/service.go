package media

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/store"
)

type Service struct {
	store *store.Store
	files filestore.Storage
}

func NewService(st *store.Store, files filestore.Storage) *Service {
	return &Service{store: st, files: files}
}

func (s *Service) List(ctx context.Context) ([]models.MediaModel, error) {
	return store.List[models.MediaModel](ctx, s.store)
}

func (s *Service) Page(ctx context.Context, q pagination.Query) ([]models.MediaModel, pagination.Page, error) {
	return store.Page[models.MediaModel](ctx, s.store, q)
}

// Gallery lists every entry with resolved image URLs.
func (s *Service) Gallery(ctx context.Context) ([]Item, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(list))
	for _, m := range list {
		items = append(items, s.toItem(m))
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.MediaModel, error) {
	var m models.MediaModel
	if err := s.store.Find(ctx, &m, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Create stores an entry whose image is already uploaded. A non-empty URL
// marks the entry as a link, whatever IsImage says.
func (s *Service) Create(ctx context.Context, dto *CreateMediaDTO) (*models.MediaModel, error) {
	m := newModel(dto)
	if err := s.store.Save(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateFromUpload uploads the image and creates the entry pointing at it.
// The upload is removed again when the entry cannot be saved.
func (s *Service) CreateFromUpload(ctx context.Context, filename string, payload []byte, dto *CreateMediaDTO) (*models.MediaModel, error) {
	m := newModel(dto)
	_, err := filestore.Attach(ctx, s.files, filestore.MediaImage, filename, payload, func(ref string) error {
		m.Image = ref
		return s.store.Save(ctx, &m)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateMediaDTO) (*models.MediaModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Image != nil {
		m.Image = *dto.Image
	}
	if dto.URL != nil {
		m.URL = *dto.URL
	}
	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.IsImage != nil {
		m.IsImage = *dto.IsImage
	}
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SetImage replaces the entry's image with a new upload.
func (s *Service) SetImage(ctx context.Context, id, filename string, payload []byte) (*models.MediaModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil || m == nil {
		return m, err
	}
	_, err = filestore.Attach(ctx, s.files, filestore.MediaImage, filename, payload, func(ref string) error {
		m.Image = ref
		return s.store.Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, &models.MediaModel{Base: models.Base{ID: id}})
}
