package models

import "time"

// ContactProfileModel is a message left through the contact form.
type ContactProfileModel struct {
	Base
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;<-:create;index;not null"`
	Name      string    `json:"name"      gorm:"size:100;not null"  validate:"required,max=100"`
	Email     string    `json:"email"     gorm:"size:254;not null"  validate:"required,email,max=254"`
	Message   string    `json:"message"   gorm:"type:text;not null" validate:"required"`
}

func (ContactProfileModel) TableName() string { return "contact_profiles" }

func (ContactProfileModel) DefaultOrder() string { return "timestamp ASC, id ASC" }

func (c ContactProfileModel) String() string { return c.Name }
