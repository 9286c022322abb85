package middleware

import (
	"physician_assessment_backend/internal/repository"
	"physician_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the :sessionId path parameter against the
// session store, aborts with 404 for unknown or expired sessions, and keeps
// the session alive by touching its last-active timestamp.
func SessionMiddleware(sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("sessionId")
		if id == "" {
			util.BadRequest(c, "missing session id")
			c.Abort()
			return
		}

		sess, err := sessions.Find(id)
		if err != nil {
			util.NotFound(c)
			c.Abort()
			return
		}

		// Async touch, not blocking the request path.
		go sessions.Touch(id)

		c.Set("session", sess)
		c.Next()
	}
}
