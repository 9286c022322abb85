package controller

import (
	"physician_assessment_backend/internal/repository"
	"physician_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Sessions *repository.SessionRepository
}

func NewHealthController(sessions *repository.SessionRepository) *HealthController {
	return &HealthController{Sessions: sessions}
}

// @Summary Health check
// @Description Service status and active session count
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"sessionStore": gin.H{
				"state":          "up",
				"activeSessions": c.Sessions.Count(),
			},
		},
	})
}
