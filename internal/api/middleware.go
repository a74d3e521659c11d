package api

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// RequireWebhookSecret rejects requests whose *secret path segment does not
// match secret. An empty secret disables the check entirely, so an
// unconfigured deployment accepts updates on any path.
func RequireWebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		got := strings.TrimPrefix(c.Param("secret"), "/")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			log.Printf("[%s] invalid webhook secret", requestid.Get(c))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "forbidden",
			})
			return
		}
		c.Next()
	}
}
