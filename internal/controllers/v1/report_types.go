package v1

import (
	"github.com/fintrack/backend/internal/models"
)

type MonthlyReportResponse struct {
	Data  *models.MonthlyReport `json:"data"`                                           // Data for the report
	Error *string               `json:"error" example:"the month must be between 1 and 12"` // The error, if any occurred
}

type YearlyReportResponse struct {
	Data  *models.YearlyReport `json:"data"`                                    // Data for the report
	Error *string              `json:"error" example:"the year must be an integer"` // The error, if any occurred
}
