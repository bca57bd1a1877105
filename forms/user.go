package forms

// SetUsernameForm contains the new username of the authenticated user
type SetUsernameForm struct {
	Username string `form:"username" json:"username" binding:"required,min=3,max=30"`
}
