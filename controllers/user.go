package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/service"
)

// UserController handles account maintenance requests
type UserController struct {
	users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

// SetUsername changes the username of the authenticated user
func (ctrl UserController) SetUsername(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.SetUsernameForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	user, err := ctrl.users.SetUsername(c.Request.Context(), caller.ID, form)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser deletes the authenticated user and all their data
func (ctrl UserController) DeleteUser(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	result, err := ctrl.users.DeleteUser(c.Request.Context(), caller)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
