package media

import "github.com/folio-space/core/internal/models"

func newModel(dto *CreateMediaDTO) models.MediaModel {
	m := models.MediaModel{
		Image:   dto.Image,
		URL:     dto.URL,
		Name:    dto.Name,
		IsImage: true,
	}
	if dto.IsImage != nil {
		m.IsImage = *dto.IsImage
	}
	return m
}

func (s *Service) toItem(m models.MediaModel) Item {
	item := Item{
		ID:      m.ID,
		Name:    m.Name,
		Link:    m.URL,
		IsImage: m.IsImage,
	}
	if s.files != nil {
		item.ImageURL = s.files.URL(m.Image)
	}
	return item
}
