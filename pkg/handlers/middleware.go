package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JACK-Producer/endtime-loud-cry/cmd/config"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/auth"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/models"
)

const cookieName = "access_token"

// RequestLogger tags every request with an id and writes one access
// log line when it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request")
	}
}

// RequireAdmin resolves the auth cookie to an admin record and aborts
// with 401 when it cannot. The cookie value carries a "Bearer " prefix
// ahead of the signed token.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		token := strings.TrimPrefix(cookie, "Bearer ")
		if token == cookie {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		admin, err := auth.ResolveAdmin(db, token, config.AuthSecret)
		if err != nil {
			if err == auth.ErrAdminNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}
		c.Set("admin", admin)
		c.Next()
	}
}

func currentAdmin(c *gin.Context) *models.Admin {
	return c.MustGet("admin").(*models.Admin)
}
