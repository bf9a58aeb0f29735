// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salon-pos/backend/internal/application/usecase/report"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
	"github.com/salon-pos/backend/internal/integration/entrypoint/dto"
)

// ReportController handles period report endpoints.
type ReportController struct {
	buildDailyReportUseCase   *report.BuildDailyReportUseCase
	buildWeeklyReportUseCase  *report.BuildWeeklyReportUseCase
	buildMonthlyReportUseCase *report.BuildMonthlyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	buildDailyReportUseCase *report.BuildDailyReportUseCase,
	buildWeeklyReportUseCase *report.BuildWeeklyReportUseCase,
	buildMonthlyReportUseCase *report.BuildMonthlyReportUseCase,
) *ReportController {
	return &ReportController{
		buildDailyReportUseCase:   buildDailyReportUseCase,
		buildWeeklyReportUseCase:  buildWeeklyReportUseCase,
		buildMonthlyReportUseCase: buildMonthlyReportUseCase,
	}
}

// GetDailyReport handles GET /reports/daily requests. The date query
// parameter defaults to today.
func (c *ReportController) GetDailyReport(ctx *gin.Context) {
	date, ok := c.parseDateQuery(ctx)
	if !ok {
		return
	}

	output, err := c.buildDailyReportUseCase.Execute(ctx.Request.Context(), date)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// GetWeeklyReport handles GET /reports/weekly requests. The report covers
// the Monday-to-Sunday week containing the date.
func (c *ReportController) GetWeeklyReport(ctx *gin.Context) {
	date, ok := c.parseDateQuery(ctx)
	if !ok {
		return
	}

	output, err := c.buildWeeklyReportUseCase.Execute(ctx.Request.Context(), date)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// GetMonthlyReport handles GET /reports/monthly requests. Year and month
// default to the current calendar month.
func (c *ReportController) GetMonthlyReport(ctx *gin.Context) {
	now := time.Now().UTC()

	yearStr := ctx.DefaultQuery("year", strconv.Itoa(now.Year()))
	monthStr := ctx.DefaultQuery("month", strconv.Itoa(int(now.Month())))

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year, expected a number",
			Code:  string(domainerror.ErrCodeInvalidReportMonth),
		})
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month, expected a number from 1 to 12",
			Code:  string(domainerror.ErrCodeInvalidReportMonth),
		})
		return
	}

	output, err := c.buildMonthlyReportUseCase.Execute(ctx.Request.Context(), year, time.Month(month))
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// parseDateQuery parses the date query parameter, defaulting to today and
// writing the error response on failure.
func (c *ReportController) parseDateQuery(ctx *gin.Context) (time.Time, bool) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		return time.Now().UTC(), true
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReportDate),
		})
		return time.Time{}, false
	}
	return date, true
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(c.statusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) statusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportDate, domainerror.ErrCodeInvalidReportMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportDataAccess:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
