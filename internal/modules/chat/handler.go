package chat

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/chat", authMW)

	g.POST("/new", h.newMessage)
	g.GET("/all-chats", h.allChats)
	g.DELETE("/delete", h.deleteChats)
}

func (h *Handler) newMessage(c *gin.Context) {
	var dto NewMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	chats, err := h.svc.Send(c.Request.Context(), middleware.CurrentUserID(c), dto.Message)
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			response.UnauthorizedMsg(c, "User not registered OR Token malfunctioned")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"chats": chats})
}

func (h *Handler) allChats(c *gin.Context) {
	chats, err := h.svc.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			response.UnauthorizedMsg(c, "User not registered OR Token malfunctioned")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "OK", "chats": chats})
}

func (h *Handler) deleteChats(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		if errors.Is(err, errUserNotFound) {
			response.UnauthorizedMsg(c, "User not registered OR Token malfunctioned")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "OK"})
}
