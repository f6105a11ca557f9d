package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/usecase/dashboard"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerly/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase      *dashboard.GetSummaryUseCase
	budgetReportUseCase *dashboard.GetBudgetReportUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	budgetReportUseCase *dashboard.GetBudgetReportUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:      summaryUseCase,
		budgetReportUseCase: budgetReportUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// GetBudgetReport handles GET /dashboard/budget-report requests. Month and
// year query parameters are required.
func (c *DashboardController) GetBudgetReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondNotAuthenticated(ctx)
		return
	}

	monthStr := ctx.Query("month")
	if monthStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month query parameter is required",
			Code:  string(domainerror.ErrCodeMissingReportMonth),
		})
		return
	}
	yearStr := ctx.Query("year")
	if yearStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year query parameter is required",
			Code:  string(domainerror.ErrCodeMissingReportYear),
		})
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month value",
			Code:  string(domainerror.ErrCodeInvalidReportMonth),
		})
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year value",
			Code:  string(domainerror.ErrCodeInvalidReportYear),
		})
		return
	}

	output, err := c.budgetReportUseCase.Execute(ctx.Request.Context(), dashboard.GetBudgetReportInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetReportResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		statusCode := http.StatusBadRequest
		if dshErr.Code == domainerror.ErrCodeDashboardInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
