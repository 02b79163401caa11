package auth

import (
	"net/http"
	"strings"

	"github.com/Kauesamartino/WorksafeApp/internal/response"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
)

const accountKey = "account"

func AuthMiddleware(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			acc, err := provider.ValidateToken(c.Request.Context(), token)
			if err == nil {
				c.Set(accountKey, acc)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
	}
}

// CurrentAccount returns the account AuthMiddleware attached to c.
func CurrentAccount(c *gin.Context) *storage.Account {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil
	}
	acc, _ := v.(*storage.Account)
	return acc
}
