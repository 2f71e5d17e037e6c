package controllers

import (
	"net/http"

	"MediConnect/config/authorization"
	"MediConnect/services"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
)

// Handler serves every route against one set of services.
type Handler struct {
	svc *services.Services
}

func New(svc *services.Services) *Handler {
	return &Handler{svc: svc}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func fail(c *gin.Context, err error) {
	if util.KindOf(err) == util.KindInternal {
		_ = c.Error(err)
	}
	c.JSON(util.StatusCode(err), util.FailedResponse(err))
}

/*
* Bind the body into v
* Binding and validation errors are bad requests
 */
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, util.Validation(err.Error()))
		return false
	}
	return true
}

// ownID fills an empty id with the caller's own id. A different id is refused.
func ownID(c *gin.Context, id *string) bool {
	self := c.GetString(authorization.UserIDKey)
	if *id == "" {
		*id = self
		return true
	}
	if *id != self {
		fail(c, util.Forbidden(util.USER_DOES_NOT_HAVE_ACCESS))
		return false
	}
	return true
}
