// Package authorization holds the single access-control layer shared by every
// role's routes.
package authorization

import (
	"strings"

	"MediConnect/config/jwt"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Keys the JWT middleware stores in the gin context.
const (
	UserIDKey = "userId"
	EmailKey  = "email"
	RoleKey   = "role"
)

/*
* Read the bearer token from the Authorization header
* Verify it with the injected signer
* Copy subject, email and role into the context
 */
func JWTAuth(signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, util.Unauthorized(util.MISSING_AUTHORIZATION_HEADER))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abort(c, util.Unauthorized(util.INVALID_AUTHORIZATION_FORMAT))
			return
		}
		claims, err := signer.ParseJWT(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Debug().Err(err).Msg("Error from ParseJWT")
			abort(c, util.Unauthorized(util.INVALID_OR_EXPIRED_TOKEN))
			return
		}
		c.Set(UserIDKey, claims.Subject)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// Authorize lets the request through only when the token role is one of roles.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		abort(c, util.Forbidden(util.ROLE_DOES_NOT_HAVE_ACCESS))
	}
}

// Self requires the :id path parameter to be the caller's own account when
// the caller has the given role. Other roles pass through unchanged, so
// Authorize decides what they may do.
func Self(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) == role && c.Param("id") != c.GetString(UserIDKey) {
			abort(c, util.Forbidden(util.USER_DOES_NOT_HAVE_ACCESS))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(util.StatusCode(err), util.FailedResponse(err))
}
