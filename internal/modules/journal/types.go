package journal

// CreateDTO is the request body for POST /journal/create.
type CreateDTO struct {
	Content string `json:"content" binding:"required"`
}
