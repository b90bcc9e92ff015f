package mood

// CreateDTO is the request body for POST /mood/create. Sentiment is a pointer
// so that a missing field is distinguishable from a literal zero.
type CreateDTO struct {
	Mood        string   `json:"mood"      binding:"required"`
	Sentiment   *float64 `json:"sentiment" binding:"required"`
	Notes       string   `json:"notes"`
	ChatContext string   `json:"chatContext"`
}

// ChatTurn is one conversation turn submitted for analysis.
type ChatTurn struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AnalyzeDTO is the request body for POST /mood/analyze-conversation. The
// analysis window is declared by the client; the server keeps no session or
// idle state of its own.
type AnalyzeDTO struct {
	Messages  []ChatTurn `json:"messages"  binding:"required,min=1,dive"`
	StartTime string     `json:"startTime" binding:"required"`
	EndTime   string     `json:"endTime"   binding:"required"`
}
