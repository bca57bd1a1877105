package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/service"
)

// QueryController serves the read-side endpoints
type QueryController struct {
	query *service.QueryService
}

func NewQueryController(query *service.QueryService) *QueryController {
	return &QueryController{query: query}
}

// QueryPosts lists posts of a user, defaulting to the caller
func (ctrl QueryController) QueryPosts(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	userID := caller.ID
	if raw := c.Query("userId"); raw != "" {
		id, err := models.ParseUserID(raw)
		if err != nil {
			fail(c, apierr.Newf(apierr.KindInvalidInput, "Invalid user id"))
			return
		}
		userID = id
	}

	page, err := ctrl.query.QueryPosts(c.Request.Context(), userID, models.PostType(c.Query("type")), paging(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetReplies lists the replies to a post
func (ctrl QueryController) GetReplies(c *gin.Context) {
	page, err := ctrl.query.GetReplies(c.Request.Context(), c.Param("postId"), paging(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetReactions lists the reactions a user has made
func (ctrl QueryController) GetReactions(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("userId"))
	if err != nil {
		fail(c, apierr.Newf(apierr.KindInvalidInput, "Invalid user id"))
		return
	}

	page, err := ctrl.query.GetReactions(c.Request.Context(), userID, paging(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetPostStats returns reaction, reply and repost counts for a post
func (ctrl QueryController) GetPostStats(c *gin.Context) {
	stats, err := ctrl.query.GetPostStats(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
