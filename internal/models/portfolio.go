package models

import "time"

// PortfolioModel is a showcased project. Slug is derived from Name on first
// insert only; see store.PreparePortfolio.
type PortfolioModel struct {
	Base
	Date        *time.Time `json:"date"`
	Name        string     `json:"name"        gorm:"size:200;index" validate:"max=200"`
	Description string     `json:"description" gorm:"size:500"       validate:"max=500"`
	Body        string     `json:"body"        gorm:"type:text"`
	Image       string     `json:"image"       gorm:"size:100"       validate:"max=100"`
	Slug        string     `json:"slug"        gorm:"size:255;index"`
	IsActive    bool       `json:"is_active"   gorm:"not null;index"`
}

func (PortfolioModel) TableName() string { return "portfolios" }

func (PortfolioModel) DefaultOrder() string { return "name ASC, created_at ASC" }

func (p PortfolioModel) Active() bool { return p.IsActive }

func (p PortfolioModel) String() string { return p.Name }

// AbsoluteURL is the public path of the entry.
func (p PortfolioModel) AbsoluteURL() string { return "/portfolio/" + p.Slug }
