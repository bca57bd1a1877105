package forms

// BookmarkPost references the post a bookmark operation applies to
type BookmarkPost struct {
	PostID string `form:"postID" json:"postID" binding:"required"`
}

// SetBookmarkForm adds a post to a bookmark category. An empty category
// name falls back to the default category.
type SetBookmarkForm struct {
	PostToBookmark BookmarkPost `json:"postToBookmark" binding:"required"`
	CategoryName   string       `json:"categoryName"`
}

// DeleteBookmarkForm removes a post from a bookmark category
type DeleteBookmarkForm struct {
	PostToDelete BookmarkPost `json:"postToDelete" binding:"required"`
	CategoryName string       `json:"categoryName" binding:"required"`
}

// BookmarkCategoryForm names the category to archive or delete
type BookmarkCategoryForm struct {
	CategoryName string `form:"categoryName" json:"categoryName" binding:"required"`
}
