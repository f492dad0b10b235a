package domain

type DocumentationLink struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description,omitempty" validate:"max=1000"`
}
