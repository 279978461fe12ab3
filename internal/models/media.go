package models

// MediaModel is an image or an external link shown in the media gallery.
// IsImage is cleared whenever URL is set; see store.PrepareMedia.
type MediaModel struct {
	Base
	Image   string `json:"image"    gorm:"size:100;not null" validate:"required,max=100"`
	URL     string `json:"url"      gorm:"size:200"          validate:"omitempty,url,max=200"`
	Name    string `json:"name"     gorm:"size:200;index"    validate:"max=200"`
	IsImage bool   `json:"is_image" gorm:"not null"`
}

func (MediaModel) TableName() string { return "media" }

func (MediaModel) DefaultOrder() string { return "name ASC, created_at ASC" }

func (m MediaModel) String() string { return m.Name }
