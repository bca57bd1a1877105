package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/service"
)

// ProfileController manages profile and profile-photo endpoints
type ProfileController struct {
	profiles *service.ProfileService
}

func NewProfileController(profiles *service.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// GetProfile returns the caller's profile
func (ctrl ProfileController) GetProfile(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	profile, err := ctrl.profiles.Get(c.Request.Context(), caller.ID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetUserProfile returns the given user's profile
func (ctrl ProfileController) GetUserProfile(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("userId"))
	if err != nil {
		fail(c, apierr.Newf(apierr.KindInvalidInput, "Invalid user id"))
		return
	}

	profile, err := ctrl.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SetProfile upserts the caller's profile
func (ctrl ProfileController) SetProfile(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	profile, err := ctrl.profiles.Set(c.Request.Context(), caller.ID, form)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SetProfilePhoto uploads the caller's profile photo
func (ctrl ProfileController) SetProfilePhoto(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		fail(c, apierr.New(apierr.KindNoPhotoUploaded))
		return
	}

	photo, err := header.Open()
	if err != nil {
		fail(c, apierr.New(apierr.KindInternal))
		return
	}
	defer photo.Close()

	err = ctrl.profiles.SetPhoto(
		c.Request.Context(),
		caller.ID,
		photo,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfilePhoto streams the caller's profile photo
func (ctrl ProfileController) GetProfilePhoto(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	photo, err := ctrl.profiles.GetPhoto(c.Request.Context(), caller.ID)
	if err != nil {
		fail(c, err)
		return
	}
	defer photo.Close()

	c.DataFromReader(http.StatusOK, -1, "image/jpeg", photo, nil)
}

// GetUserProfilePhoto streams the given user's profile photo
func (ctrl ProfileController) GetUserProfilePhoto(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("userId"))
	if err != nil {
		fail(c, apierr.Newf(apierr.KindInvalidInput, "Invalid user id"))
		return
	}

	photo, err := ctrl.profiles.GetPhoto(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	defer photo.Close()

	c.DataFromReader(http.StatusOK, -1, "image/jpeg", photo, nil)
}

// DeleteProfilePhoto removes the caller's profile photo
func (ctrl ProfileController) DeleteProfilePhoto(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	if err := ctrl.profiles.DeletePhoto(c.Request.Context(), caller.ID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
