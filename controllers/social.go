package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/service"
)

// MutedWordsController manages the muted-words endpoint
type MutedWordsController struct {
	words *service.MutedWordsService
}

func NewMutedWordsController(words *service.MutedWordsService) *MutedWordsController {
	return &MutedWordsController{words: words}
}

// MuteWord adds a word to the caller's muted set
func (ctrl MutedWordsController) MuteWord(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.MuteWordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	if _, err := ctrl.words.MuteWord(c.Request.Context(), caller.ID, form.MutedWord); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "Word muted successfully"})
}

// BlockAccountController manages the blocked-accounts endpoint
type BlockAccountController struct {
	accounts *service.BlockAccountService
}

func NewBlockAccountController(accounts *service.BlockAccountService) *BlockAccountController {
	return &BlockAccountController{accounts: accounts}
}

// BlockAccount adds an account to the caller's blocked set
func (ctrl BlockAccountController) BlockAccount(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.BlockAccountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	if _, err := ctrl.accounts.BlockAccount(c.Request.Context(), caller.ID, form.BlockedAccountID); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "Account blocked successfully"})
}
