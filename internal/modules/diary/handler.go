package diary

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/diary", authMW)

	g.POST("/create", h.create)
	g.GET("/entries", h.entries)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	title := strings.TrimSpace(dto.Title)
	content := strings.TrimSpace(dto.Content)
	if title == "" || content == "" {
		response.BadRequest(c, "Title and content are required")
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), middleware.CurrentUserID(c), title, content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"success": true,
		"message": "Diary entry created successfully",
		"diary":   entry,
	})
}

func (h *Handler) entries(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"success": true,
		"message": "Diaries retrieved successfully",
		"diaries": entries,
	})
}
