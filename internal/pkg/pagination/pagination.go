package pagination

import "gorm.io/gorm"

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds pagination parameters.
type Query struct {
	Page int
	Size int
}

// Page is the metadata returned alongside a page of records.
type Page struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// New clamps page and size into their valid ranges.
func New(page, size int) Query {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Query{Page: page, Size: size}
}

// Paginate applies limit/offset to a GORM query and returns the pagination metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (Page, error) {
	q = New(q.Page, q.Size)

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return Page{}, err
	}

	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))

	return Page{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
		HasPrevPage: q.Page > 1,
	}, nil
}
