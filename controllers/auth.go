package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/service"
)

// AuthController handles authentication related operations
type AuthController struct {
	auth *service.AuthService
}

// NewAuthController creates and returns a new AuthController instance
func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

var userForm = new(forms.UserForm)

// Register handles new user registration requests, validates input and
// creates a new user account with a fresh token pair
func (ctrl AuthController) Register(c *gin.Context) {
	var registerForm forms.RegisterForm

	if err := c.ShouldBindJSON(&registerForm); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": userForm.Register(err)})
		return
	}

	result, err := ctrl.auth.Register(c.Request.Context(), registerForm)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles user authentication requests, validates credentials and
// returns a token pair
func (ctrl AuthController) Login(c *gin.Context) {
	var loginForm forms.LoginForm

	if err := c.ShouldBindJSON(&loginForm); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": userForm.Login(err)})
		return
	}

	result, err := ctrl.auth.Login(c.Request.Context(), loginForm)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout revokes the caller's token pair
func (ctrl AuthController) Logout(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	if err := ctrl.auth.Logout(c.Request.Context(), caller.JTI); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Refresh exchanges a refresh token for a new access/refresh pair
func (ctrl AuthController) Refresh(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var refreshForm forms.RefreshForm
	if err := c.ShouldBindJSON(&refreshForm); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	// The form must name the account the access token belongs to. The
	// check never consumes the refresh token.
	if refreshForm.Email != caller.Email {
		fail(c, apierr.Unauthorized())
		return
	}

	result, err := ctrl.auth.Refresh(c.Request.Context(), refreshForm.RefreshToken, caller)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
