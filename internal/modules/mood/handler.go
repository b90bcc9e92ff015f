package mood

import (
	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/mood", authMW)

	g.POST("/create", h.create)
	g.POST("/analyze-conversation", h.analyzeConversation)
	g.GET("/history", h.history)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	if *dto.Sentiment < 0 || *dto.Sentiment > 1 {
		response.UnprocessableEntity(c, []gin.H{
			{"field": "sentiment", "message": "must be between 0 and 1"},
		})
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"success": true,
		"message": "Mood entry created successfully",
		"entry":   entry,
	})
}

func (h *Handler) analyzeConversation(c *gin.Context) {
	var dto AnalyzeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}

	sentiment, _, err := h.svc.Analyze(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"success":   true,
		"message":   "Conversation analyzed and mood entry created",
		"sentiment": sentiment,
	})
}

func (h *Handler) history(c *gin.Context) {
	entries, err := h.svc.History(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"success":     true,
		"message":     "Mood history retrieved successfully",
		"moodHistory": entries,
	})
}
