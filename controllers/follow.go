package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/service"
)

// FollowController manages the follower graph endpoints
type FollowController struct {
	follows *service.FollowService
}

func NewFollowController(follows *service.FollowService) *FollowController {
	return &FollowController{follows: follows}
}

// FollowUser makes the caller follow the given user
func (ctrl FollowController) FollowUser(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	follow, err := ctrl.follows.FollowUser(c.Request.Context(), caller.ID, c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, follow)
}

// UnfollowUser makes the caller unfollow the given user
func (ctrl FollowController) UnfollowUser(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	follow, err := ctrl.follows.UnfollowUser(c.Request.Context(), caller.ID, c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, follow)
}

// GetUserFollowing lists who the given user follows
func (ctrl FollowController) GetUserFollowing(c *gin.Context) {
	page, err := ctrl.follows.GetUserFollowing(c.Request.Context(), c.Param("userId"), paging(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetUserFollowers lists who follows the given user
func (ctrl FollowController) GetUserFollowers(c *gin.Context) {
	page, err := ctrl.follows.GetUserFollowers(c.Request.Context(), c.Param("userId"), paging(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
