package diary

// CreateDTO is the request body for POST /diary/create.
type CreateDTO struct {
	Title   string `json:"title"   binding:"required"`
	Content string `json:"content" binding:"required"`
}
