package user

import "errors"

var (
	errEmailTaken    = errors.New("email is already registered")
	errUserNotFound  = errors.New("user not found")
	errWrongPassword = errors.New("incorrect password")
)

// SignupDTO is the request body for POST /user/signup.
type SignupDTO struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginDTO is the request body for POST /user/login.
type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
