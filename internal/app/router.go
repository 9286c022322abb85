package app

import (
	"physician_assessment_backend/docs"
	"physician_assessment_backend/internal/middleware"
	"physician_assessment_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		assessment := api.Group("/assessment")
		{
			assessment.GET("/catalog", c.assessment.GetCatalog)
			assessment.GET("/timeline", c.chart.GetTimeline)
			assessment.POST("/sessions", c.assessment.StartSession)

			session := assessment.Group("/sessions/:sessionId")
			session.Use(middleware.SessionMiddleware(repos.session))
			{
				session.GET("", c.assessment.GetSession)
				session.PUT("/responses", c.assessment.SaveResponses)
				session.POST("/submit", c.assessment.Submit)
				session.POST("/reset", c.assessment.Reset)
				session.GET("/scores", c.assessment.GetScores)
				session.GET("/recommendations", c.assessment.GetRecommendations)
				session.GET("/charts", c.chart.GetCharts)
				session.GET("/export/json", c.export.DownloadJSON)
				session.GET("/export/excel", c.export.DownloadExcel)
			}
		}
	}
}
