package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var (
	errYearInvalid  = errors.New("the year must be an integer")
	errMonthInvalid = errors.New("the month must be an integer")
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly/:year/:month", OptionsReport)
	r.GET("/monthly/:year/:month", GetMonthlyReport)

	r.OPTIONS("/yearly/:year", OptionsReport)
	r.GET("/yearly/:year", GetYearlyReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/yearly/{year} [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Aggregates one month of the user's transactions by category
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyReportResponse
// @Failure		400		{object}	MonthlyReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	MonthlyReportResponse
// @Param			year	path		int	true	"Year of the report"
// @Param			month	path		int	true	"Month of the report (1-12)"
// @Router			/v1/reports/monthly/{year}/{month} [get]
func GetMonthlyReport(c *gin.Context) {
	user := currentUser(c)

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		s := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &s})
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		s := errMonthInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &s})
		return
	}

	report, err := models.MonthlyReportFor(user.ID, year, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyReportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: &report})
}

// @Summary		Yearly report
// @Description	Aggregates one calendar year of the user's transactions by category
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	YearlyReportResponse
// @Failure		400		{object}	YearlyReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	YearlyReportResponse
// @Param			year	path		int	true	"Year of the report"
// @Router			/v1/reports/yearly/{year} [get]
func GetYearlyReport(c *gin.Context) {
	user := currentUser(c)

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		s := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, YearlyReportResponse{Error: &s})
		return
	}

	report, err := models.YearlyReportFor(user.ID, year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), YearlyReportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, YearlyReportResponse{Data: &report})
}
