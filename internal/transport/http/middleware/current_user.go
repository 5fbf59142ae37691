package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Fabirm9/nest-graphql/internal/core/auth"
	"github.com/Fabirm9/nest-graphql/internal/graph"
	"github.com/Fabirm9/nest-graphql/internal/service"
)

// CurrentUser resolves an optional bearer token into the calling user and
// attaches it to the request context for the resolvers. A missing header
// passes through (signup/login share the same endpoint); a present but
// invalid token, or an inactive account, rejects the call outright.
func CurrentUser(j *auth.JWTer, authSvc *service.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if ah == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(ah, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "invalid authorization header")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		user, err := authSvc.ValidateUser(c.Request.Context(), claims.UID)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Request = c.Request.WithContext(graph.WithUser(c.Request.Context(), user))
		c.Next()
	}
}
