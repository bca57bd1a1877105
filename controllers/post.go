package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/service"
)

// PostController handles posts, reactions and attachments
type PostController struct {
	posts *service.PostService
}

func NewPostController(posts *service.PostService) *PostController {
	return &PostController{posts: posts}
}

// CreatePost creates a post, repost or reply
func (ctrl PostController) CreatePost(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.CreatePostForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	post, err := ctrl.posts.CreatePost(c.Request.Context(), caller.ID, form)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ReactToPost likes the given post
func (ctrl PostController) ReactToPost(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.ReactionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	reaction, err := ctrl.posts.ReactToPost(c.Request.Context(), caller.ID, c.Param("postId"), form)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, reaction)
}

// UnreactToPost removes the caller's reaction from the given post
func (ctrl PostController) UnreactToPost(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	reaction, err := ctrl.posts.UnreactToPost(c.Request.Context(), caller.ID, c.Param("postId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, reaction)
}

// AttachToPost uploads a photo for one of the caller's posts
func (ctrl PostController) AttachToPost(c *gin.Context) {
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

	attachment, err := ctrl.posts.AttachPhoto(
		c.Request.Context(),
		caller.ID,
		c.Param("postId"),
		photo,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, attachment)
}

// GetPostAttachment streams the photo attached to a post
func (ctrl PostController) GetPostAttachment(c *gin.Context) {
	attachment, photo, err := ctrl.posts.GetAttachment(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, err)
		return
	}
	defer photo.Close()

	c.DataFromReader(http.StatusOK, -1, attachment.MimeType, photo, nil)
}

// DeletePost deletes one of the caller's posts
func (ctrl PostController) DeletePost(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	post, err := ctrl.posts.DeletePost(c.Request.Context(), caller.ID, c.Param("postId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
