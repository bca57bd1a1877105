package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/middleware"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/service"
)

// identity fetches the caller attached by the authentication gate. The
// gates guarantee it is present on protected routes; a miss means the
// route was wired without one.
func identity(c *gin.Context) (models.AuthenticatedUser, bool) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please login first"})
	}
	return caller, ok
}

// paging reads the shared pagination query parameters.
func paging(c *gin.Context) service.Paging {
	perPage, _ := strconv.ParseInt(c.Query("resultsPerPage"), 10, 64)
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	return service.Paging{ResultsPerPage: perPage, Page: page}
}

// fail records the error for the boundary handler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
