package controller

import (
	"errors"
	"physician_assessment_backend/internal/service"
	"physician_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	Charts     *service.ChartService
	Assessment *service.AssessmentService
}

func NewChartController(charts *service.ChartService, assessment *service.AssessmentService) *ChartController {
	return &ChartController{Charts: charts, Assessment: assessment}
}

// @Summary Get chart data for the session's scores
// @Description Bar and radar series; rendering is up to the client
// @Tags charts
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} util.Response
// @Router /assessment/sessions/{sessionId}/charts [get]
func (c *ChartController) GetCharts(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	report, err := c.Assessment.Scores(sess.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotSubmitted) {
			util.Conflict(ctx, "complete and submit the assessment to see charts")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, c.Charts.ScoreCharts(report.CategoryScores))
}

// @Summary Get the fixed progress timeline
// @Tags charts
// @Produce json
// @Success 200 {object} util.Response
// @Router /assessment/timeline [get]
func (c *ChartController) GetTimeline(ctx *gin.Context) {
	util.Success(ctx, c.Charts.Timeline())
}
