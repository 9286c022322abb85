package controller

import (
	"errors"
	"fmt"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/service"
	"physician_assessment_backend/internal/util"
	"physician_assessment_backend/pkg/monitoring"
	"strings"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
	Catalog *catalog.Catalog
}

func NewAssessmentController(svc *service.AssessmentService, cat *catalog.Catalog) *AssessmentController {
	return &AssessmentController{Service: svc, Catalog: cat}
}

// @Summary Get the question catalog
// @Description Categories, questions, option labels and weights, in presentation order
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /assessment/catalog [get]
func (c *AssessmentController) GetCatalog(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"categories":     c.Catalog.Categories(),
		"totalQuestions": c.Catalog.TotalQuestions(),
	})
}

// @Summary Start a new assessment session
// @Tags assessment
// @Produce json
// @Success 201 {object} util.Response
// @Router /assessment/sessions [post]
func (c *AssessmentController) StartSession(ctx *gin.Context) {
	sess := c.Service.StartSession()
	util.Created(ctx, sess)
}

// @Summary Get session state
// @Tags assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} util.Response
// @Router /assessment/sessions/{sessionId} [get]
func (c *AssessmentController) GetSession(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, sess)
}

type SaveResponsesRequest struct {
	Responses []service.CategoryAnswers `json:"responses" binding:"required"`
}

// @Summary Record answers
// @Description Merges the submitted answers into the session; null entries leave a question unanswered
// @Tags assessment
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param body body SaveResponsesRequest true "Answers grouped by category"
// @Success 200 {object} util.Response
// @Router /assessment/sessions/{sessionId}/responses [put]
func (c *AssessmentController) SaveResponses(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	var req SaveResponsesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.SaveResponses(sess.ID, req.Responses); err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadySubmitted):
			util.Conflict(ctx, "assessment already submitted, reset to change answers")
		case errors.Is(err, util.ErrUnknownCategory),
			errors.Is(err, util.ErrAnswerCountMismatch),
			errors.Is(err, util.ErrAnswerOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"saved": true})
}

// @Summary Submit the assessment
// @Description Validates completeness, then computes and returns the score report
// @Tags assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Unanswered questions remain"
// @Router /assessment/sessions/{sessionId}/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	missing, report, err := c.Service.Submit(sess.ID)
	if err != nil {
		if errors.Is(err, util.ErrAlreadySubmitted) {
			util.Conflict(ctx, "assessment already submitted")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	if len(missing) > 0 {
		util.BadRequest(ctx, formatMissing(missing))
		return
	}

	monitoring.SubmissionCounter.Inc()
	util.Success(ctx, report)
}

// @Summary Reset the session
// @Description Discards all answers and returns the session to the unanswered state
// @Tags assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} util.Response
// @Router /assessment/sessions/{sessionId}/reset [post]
func (c *AssessmentController) Reset(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	if err := c.Service.Reset(sess.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reset": true})
}

// @Summary Get the score report
// @Description Recomputed on demand from the stored responses
// @Tags assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} util.Response
// @Router /assessment/sessions/{sessionId}/scores [get]
func (c *AssessmentController) GetScores(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	report, err := c.Service.Scores(sess.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotSubmitted) {
			util.Conflict(ctx, "complete and submit the assessment to see scores")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary Get the personalized action plan
// @Tags assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} util.Response
// @Router /assessment/sessions/{sessionId}/recommendations [get]
func (c *AssessmentController) GetRecommendations(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	recommendations, err := c.Service.Recommendations(sess.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotSubmitted) {
			util.Conflict(ctx, "complete and submit the assessment to see recommendations")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recommendations)
}

// formatMissing truncates the identifier list to the first three entries
// plus a count of the remainder.
func formatMissing(missing []string) string {
	shown := missing
	if len(shown) > 3 {
		shown = shown[:3]
	}
	msg := fmt.Sprintf("Please answer all questions. Missing: %s", strings.Join(shown, ", "))
	if rest := len(missing) - len(shown); rest > 0 {
		msg += fmt.Sprintf(" ... and %d more", rest)
	}
	return msg
}
