package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/service"
)

// InterestController manages the interests endpoints
type InterestController struct {
	interests *service.InterestService
}

func NewInterestController(interests *service.InterestService) *InterestController {
	return &InterestController{interests: interests}
}

// GetInterests lists every interest in the catalogue
func (ctrl InterestController) GetInterests(c *gin.Context) {
	interests, err := ctrl.interests.GetInterests(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, interests)
}

// SetInterests joins the caller to the selected interests
func (ctrl InterestController) SetInterests(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var form forms.SetInterestsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid form"})
		return
	}

	result, err := ctrl.interests.SetUserInterests(c.Request.Context(), caller.ID, form)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
