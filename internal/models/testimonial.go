package models

// TestimonialModel is a quote from a client or colleague.
type TestimonialModel struct {
	Base
	Thumbnail string `json:"thumbnail" gorm:"size:100"       validate:"max=100"`
	Name      string `json:"name"      gorm:"size:200;index" validate:"max=200"`
	Role      string `json:"role"      gorm:"size:200"       validate:"max=200"`
	Quote     string `json:"quote"     gorm:"size:500"       validate:"max=500"`
	IsActive  bool   `json:"is_active" gorm:"not null;index"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (TestimonialModel) DefaultOrder() string { return "name ASC, created_at ASC" }

func (t TestimonialModel) Active() bool { return t.IsActive }

func (t TestimonialModel) String() string { return t.Name }
