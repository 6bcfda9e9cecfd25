package dto

import "time"

// CreateNewsRequest body pour POST /api/news.
type CreateNewsRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// UpdateNewsRequest body pour PUT /api/news/:id (mise à jour partielle).
type UpdateNewsRequest struct {
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// NewsResponse représentation d'une actualité.
type NewsResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewsListResponse réponse paginée de GET /api/news.
type NewsListResponse struct {
	Items []NewsResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
