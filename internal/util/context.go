package util

import (
	"physician_assessment_backend/internal/model"

	"github.com/gin-gonic/gin"
)

// GetSessionFromContext returns the session placed there by the session
// middleware, or nil when the route is not session-scoped.
func GetSessionFromContext(c *gin.Context) *model.AssessmentSession {
	v, exists := c.Get("session")
	if !exists {
		return nil
	}
	sess, ok := v.(*model.AssessmentSession)
	if !ok {
		return nil
	}
	return sess
}
