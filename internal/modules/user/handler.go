package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc          *Service
	cookieDomain string
	cookieSecure bool
}

func NewHandler(svc *Service, cookieDomain string, cookieSecure bool) *Handler {
	return &Handler{svc: svc, cookieDomain: cookieDomain, cookieSecure: cookieSecure}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/user")

	g.POST("/signup", h.signup)
	g.POST("/login", h.login)
	g.GET("/auth-status", authMW, h.authStatus)
	g.POST("/logout", authMW, h.logout)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	u, err := h.svc.Signup(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.Conflict(c, "User already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	if err := h.issueCookie(c, u.ID.Hex(), u.Email); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"success": true, "message": "OK", "name": u.Name, "email": u.Email})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationError(c, err)
		return
	}
	u, err := h.svc.Login(c.Request.Context(), dto.Email, dto.Password)
	if err != nil {
		switch {
		case errors.Is(err, errUserNotFound):
			response.Forbidden(c, "User not registered")
		case errors.Is(err, errWrongPassword):
			response.Forbidden(c, "Incorrect password")
		default:
			response.InternalError(c, err)
		}
		return
	}
	if err := h.issueCookie(c, u.ID.Hex(), u.Email); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true, "message": "OK", "name": u.Name, "email": u.Email})
}

func (h *Handler) authStatus(c *gin.Context) {
	u, err := h.svc.GetByID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.UnauthorizedMsg(c, "User not registered OR Token malfunctioned")
		return
	}
	response.OK(c, gin.H{"success": true, "message": "OK", "name": u.Name, "email": u.Email})
}

func (h *Handler) logout(c *gin.Context) {
	h.clearCookie(c)
	response.OK(c, gin.H{"success": true, "message": "OK"})
}

// issueCookie replaces any previous credential with a fresh 7-day token.
func (h *Handler) issueCookie(c *gin.Context, userID, email string) error {
	token, err := jwt.Sign(userID, email, jwt.DefaultTTL)
	if err != nil {
		return err
	}
	h.clearCookie(c)
	c.SetCookie(middleware.CookieName, token, int(jwt.DefaultTTL.Seconds()), "/", h.cookieDomain, h.cookieSecure, true)
	return nil
}

func (h *Handler) clearCookie(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", h.cookieDomain, h.cookieSecure, true)
}
