package forms

// InterestEntry names one interest the user selected
type InterestEntry struct {
	InterestName string `json:"interestName" binding:"required"`
}

// SetInterestsForm contains the interests selected by the user
type SetInterestsForm struct {
	Interests []InterestEntry `json:"interests" binding:"required,min=1,dive"`
}

// MuteWordForm contains a word to add to the user's muted set
type MuteWordForm struct {
	MutedWord string `form:"mutedWord" json:"mutedWord" binding:"required"`
}

// BlockAccountForm contains the account id to block
type BlockAccountForm struct {
	BlockedAccountID string `form:"blockedAccountID" json:"blockedAccountID" binding:"required"`
}

// ProfileForm contains the editable profile fields
type ProfileForm struct {
	Bio      string `form:"bio" json:"bio" binding:"omitempty,max=160"`
	Location string `form:"location" json:"location" binding:"omitempty,max=60"`
	Website  string `form:"website" json:"website" binding:"omitempty,max=100"`
}
