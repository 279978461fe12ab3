package media

type CreateMediaDTO struct {
	Image   string `json:"image"`
	URL     string `json:"url"`
	Name    string `json:"name"`
	IsImage *bool  `json:"is_image"`
}

type UpdateMediaDTO struct {
	Image   *string `json:"image"`
	URL     *string `json:"url"`
	Name    *string `json:"name"`
	IsImage *bool   `json:"is_image"`
}

// Item is a gallery entry with its image resolved to a public URL.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link,omitempty"`
	IsImage  bool   `json:"is_image"`
}
