package models

import "time"

// CertificateModel is an earned certificate. It has no ordering of its own
// and lists in insertion order.
type CertificateModel struct {
	Base
	Date        *time.Time `json:"date"`
	Name        string     `json:"name"        gorm:"size:50"  validate:"max=50"`
	Title       string     `json:"title"       gorm:"size:200" validate:"max=200"`
	Description string     `json:"description" gorm:"size:500" validate:"max=500"`
	IsActive    bool       `json:"is_active"   gorm:"not null;index"`
}

func (CertificateModel) TableName() string { return "certificates" }

func (c CertificateModel) Active() bool { return c.IsActive }

func (c CertificateModel) String() string { return c.Name }
