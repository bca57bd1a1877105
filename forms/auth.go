package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// UserForm provides the error message helpers shared by the auth forms
type UserForm struct{}

// RegisterForm contains the fields required for user registration
type RegisterForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Name     string `form:"name" json:"name" binding:"required,min=3,max=30"`
	Username string `form:"username" json:"username" binding:"required,min=3,max=30"`
	Password string `form:"password" json:"password" binding:"required,min=6,max=50"`
}

// LoginForm contains the fields required for user login
type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6,max=50"`
}

// RefreshForm contains the fields required to exchange a refresh token
// for a new token pair
type RefreshForm struct {
	Email        string `form:"email" json:"email" binding:"required,email"`
	RefreshToken string `form:"refreshToken" json:"refreshToken" binding:"required"`
}

// Email validates and returns appropriate error messages for email field validation
func (f UserForm) Email(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your email"
	case "min", "max", "email":
		return "Please enter a valid email"
	default:
		return "Something went wrong, please try again later"
	}
}

// Password validates and returns appropriate error messages for password field validation
func (f UserForm) Password(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your password"
	case "min", "max":
		return "Your password should be between 6 and 50 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// Name returns error messages for display-name validation
func (f UserForm) Name(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your name"
	case "min", "max":
		return "Your name should be between 3 and 30 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

// Username returns error messages for username validation
func (f UserForm) Username(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your username"
	case "min", "max":
		return "Your username should be between 3 and 30 characters"
	default:
		return "Something went wrong, please try again later"
	}
}

func (f UserForm) fieldMessage(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return "Something went wrong, please try again later"
		}

		for _, err := range err.(validator.ValidationErrors) {
			switch err.Field() {
			case "Email":
				return f.Email(err.Tag())
			case "Password":
				return f.Password(err.Tag())
			case "Name":
				return f.Name(err.Tag())
			case "Username":
				return f.Username(err.Tag())
			}
		}

	default:
		return "Invalid request"
	}

	return "Something went wrong, please try again later"
}

// Login validates the login form and returns appropriate error messages
func (f UserForm) Login(err error) string {
	return f.fieldMessage(err)
}

// Register validates the registration form and returns appropriate error messages
func (f UserForm) Register(err error) string {
	return f.fieldMessage(err)
}
