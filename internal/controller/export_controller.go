package controller

import (
	"errors"
	"fmt"
	"net/http"
	"physician_assessment_backend/internal/service"
	"physician_assessment_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	Service *service.ExportService
}

func NewExportController(svc *service.ExportService) *ExportController {
	return &ExportController{Service: svc}
}

// @Summary Download results as JSON
// @Tags export
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {file} file
// @Router /assessment/sessions/{sessionId}/export/json [get]
func (c *ExportController) DownloadJSON(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	payload, err := c.Service.BuildJSON(sess)
	if err != nil {
		if errors.Is(err, util.ErrNotSubmitted) {
			util.Conflict(ctx, "complete and submit the assessment before exporting")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("physician_assessment_%s.json", time.Now().Format(util.FileStampFull))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/json", payload)
}

// @Summary Download the Excel report
// @Description Four sheets: Summary, Detailed Scores, Action Plan, Overview
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param sessionId path string true "Session ID"
// @Success 200 {file} file
// @Router /assessment/sessions/{sessionId}/export/excel [get]
func (c *ExportController) DownloadExcel(ctx *gin.Context) {
	sess := util.GetSessionFromContext(ctx)
	if sess == nil {
		util.NotFound(ctx)
		return
	}

	buf, err := c.Service.BuildWorkbook(sess)
	if err != nil {
		if errors.Is(err, util.ErrNotSubmitted) {
			util.Conflict(ctx, "complete and submit the assessment before exporting")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("physician_assessment_report_%s.xlsx", time.Now().Format(util.FileStampDate))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
