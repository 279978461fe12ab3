package store

import (
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/slug"
)

// PrepareMedia clears IsImage when the record points at an external URL.
// It never sets IsImage back to true.
func PrepareMedia(m models.MediaModel, isInsert bool) models.MediaModel {
	if m.URL != "" {
		m.IsImage = false
	}
	return m
}

// PreparePortfolio derives the slug from the name on first insert. Updates
// keep whatever slug the record already has.
func PreparePortfolio(p models.PortfolioModel, isInsert bool) models.PortfolioModel {
	if isInsert {
		p.Slug = slug.Make(p.Name)
	}
	return p
}

// PrepareContact drops any caller supplied timestamp on insert so the
// database assigns it.
func PrepareContact(c models.ContactProfileModel, isInsert bool) models.ContactProfileModel {
	if isInsert {
		c.Timestamp = time.Time{}
	}
	return c
}

// prepare applies the pre-persist rule of rec's kind in place.
func prepare(rec models.Record, isInsert bool) {
	switch r := rec.(type) {
	case *models.MediaModel:
		*r = PrepareMedia(*r, isInsert)
	case *models.PortfolioModel:
		*r = PreparePortfolio(*r, isInsert)
	case *models.ContactProfileModel:
		*r = PrepareContact(*r, isInsert)
	}
}
