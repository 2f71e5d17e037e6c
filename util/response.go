package util

import (
	"errors"

	core "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

/*
* Internal errors never leak their cause to the client
 */
func FailedResponse(err error) gin.H {
	if KindOf(err) == KindInternal {
		return core.FailedResponse(errors.New(INTERNAL_SERVER_ERROR))
	}
	return core.FailedResponse(err)
}

func MessageResponse(msg string) gin.H {
	return gin.H{"message": msg}
}
