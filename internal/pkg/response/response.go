package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "code": http.StatusBadRequest, "message": message})
}

// UnprocessableEntity sends a 422 error response with field-level messages.
func UnprocessableEntity(c *gin.Context, errors interface{}) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"success": false, "code": http.StatusUnprocessableEntity, "errors": errors})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "code": http.StatusUnauthorized, "message": "authentication required"})
}

// UnauthorizedMsg sends a 401 error with a custom message.
func UnauthorizedMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "code": http.StatusUnauthorized, "message": message})
}

// Forbidden sends a 403 error response with a custom message.
func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "code": http.StatusForbidden, "message": message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "code": http.StatusNotFound, "message": "not found"})
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"success": false, "code": http.StatusMethodNotAllowed, "message": "method not allowed"})
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusConflict, gin.H{"success": false, "code": http.StatusConflict, "message": message})
}

// ValidationError maps a binding failure to 422 with field-level messages,
// or 400 for malformed request bodies.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{"field": jsonFieldName(fe.Field()), "message": fieldMessage(fe)})
		}
		UnprocessableEntity(c, fields)
		return
	}
	BadRequest(c, err.Error())
}

// jsonFieldName maps a struct field name to its lowerCamel wire name.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// InternalError sends a 500 error response carrying the error text.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "code": http.StatusInternalServerError, "message": err.Error()})
}
