package forms

// CreatePostForm contains the fields of a new post, repost or reply.
// Text is optional: a bare repost carries none.
type CreatePostForm struct {
	Text           string `form:"text" json:"text" binding:"omitempty,max=500"`
	Type           string `form:"type" json:"type" binding:"required,oneof=post repost reply"`
	OriginalPostID string `form:"originalPostId" json:"originalPostId" binding:"omitempty"`
}

// ReactionForm contains the reaction applied to a post
type ReactionForm struct {
	Type string `form:"type" json:"type" binding:"required,oneof=like"`
}
