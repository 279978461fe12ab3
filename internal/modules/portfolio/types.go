package portfolio

import (
	"time"

	"github.com/folio-space/core/internal/models"
)

type CreatePortfolioDTO struct {
	Date        *time.Time `json:"date"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	Image       string     `json:"image"`
	IsActive    *bool      `json:"is_active"`
}

// UpdatePortfolioDTO has no slug: it is fixed at first insert.
type UpdatePortfolioDTO struct {
	Date        *time.Time `json:"date"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Body        *string    `json:"body"`
	Image       *string    `json:"image"`
	IsActive    *bool      `json:"is_active"`
}

// Detail is a portfolio entry ready for its public page.
type Detail struct {
	models.PortfolioModel
	BodyHTML string `json:"body_html"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url,omitempty"`
}
