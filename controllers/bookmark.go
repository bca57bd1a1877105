package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/service"
)

// BookmarkController manages the bookmark endpoints
type BookmarkController struct {
	bookmarks *service.BookmarkService
}

func NewBookmarkController(bookmarks *service.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarks: bookmarks}
}

// SetBookmark adds a post to one of the caller's bookmark categories
func (ctrl BookmarkController) SetBookmark(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.SetBookmarkForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	bookmarks, err := ctrl.bookmarks.AddToBookmarks(c.Request.Context(), caller.ID, form)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// GetBookmarks returns a user's bookmarks
func (ctrl BookmarkController) GetBookmarks(c *gin.Context) {
	bookmarks, err := ctrl.bookmarks.GetBookmarks(c.Request.Context(), c.Param("userID"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// SearchBookmarks returns the bookmarked posts matching a text query
func (ctrl BookmarkController) SearchBookmarks(c *gin.Context) {
	posts, err := ctrl.bookmarks.SearchBookmarks(c.Request.Context(), c.Param("userID"), c.Param("searchQuery"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": posts})
}

// DeleteBookmark removes a post from one of the caller's categories
func (ctrl BookmarkController) DeleteBookmark(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.DeleteBookmarkForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	if err := ctrl.bookmarks.DeleteBookmark(c.Request.Context(), caller.ID, form); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "Post deleted successfully from user's bookmarks"})
}

// ArchiveBookmarkCategory moves a category into the archive
func (ctrl BookmarkController) ArchiveBookmarkCategory(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.BookmarkCategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	if err := ctrl.bookmarks.ArchiveCategory(c.Request.Context(), caller.ID, form.CategoryName); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "Category archived successfully"})
}

// DeleteBookmarkCategory deletes a category and its bookmarked posts
func (ctrl BookmarkController) DeleteBookmarkCategory(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.BookmarkCategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	if err := ctrl.bookmarks.DeleteCategory(c.Request.Context(), caller.ID, form.CategoryName); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "Category deleted successfully"})
}
