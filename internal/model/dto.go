package model

type CreateCommentDTO struct {
	PostID   int64  `json:"post_id"`
	AuthorID int64  `json:"author_id"`
	Text     string `json:"text"`
}

type UpdateProfileDTO struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type CreateCategoryDTO struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published"`
}

type UpdateCategoryDTO struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type CreateLocationDTO struct {
	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}

type UpdateLocationDTO struct {
	Name        *string `json:"name,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}
