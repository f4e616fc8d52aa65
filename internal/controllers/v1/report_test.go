package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetMonthlyReport() {
	token := suite.registerTestUser()

	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("5000"), Date: types.NewDate(2020, time.January, 1), Category: "Salary"})
	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("500"), Date: types.NewDate(2020, time.January, 10), Category: "Food"})
	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("1500"), Date: types.NewDate(2020, time.January, 5), Category: "Rent"})

	// February, must not be in the January report
	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("999"), Date: types.NewDate(2020, time.February, 1), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/monthly/2020/1", nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	report := response.Data
	suite.Assert().Equal(1, report.Month)
	suite.Assert().Equal(2020, report.Year)
	suite.Assert().True(decimal.RequireFromString("5000").Equal(report.TotalIncome["Salary"]), "Salary total is %s", report.TotalIncome["Salary"])
	suite.Assert().True(decimal.RequireFromString("500").Equal(report.TotalExpenses["Food"]), "Food total is %s", report.TotalExpenses["Food"])
	suite.Assert().True(decimal.RequireFromString("1500").Equal(report.TotalExpenses["Rent"]), "Rent total is %s", report.TotalExpenses["Rent"])
	suite.Assert().True(decimal.RequireFromString("3000").Equal(report.NetSavings), "Net savings are %s", report.NetSavings)
}

func (suite *TestSuiteStandard) TestGetMonthlyReportInvalid() {
	token := suite.registerTestUser()

	tests := []struct {
		name string
		path string
	}{
		{"Month zero", "/v1/reports/monthly/2020/0"},
		{"Month too large", "/v1/reports/monthly/2020/13"},
		{"Month not a number", "/v1/reports/monthly/2020/abc"},
		{"Year not a number", "/v1/reports/monthly/abc/1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, tt.path, nil, authHeaders(token))
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestGetYearlyReport() {
	token := suite.registerTestUser()

	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("5000"), Date: types.NewDate(2020, time.January, 1), Category: "Salary"})
	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("5000"), Date: types.NewDate(2020, time.July, 1), Category: "Salary"})
	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("1500"), Date: types.NewDate(2020, time.December, 31), Category: "Rent"})

	// The year after, must not be counted
	_ = suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("999"), Date: types.NewDate(2021, time.January, 1), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/yearly/2020", nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.YearlyReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	report := response.Data
	suite.Assert().Equal(2020, report.Year)
	suite.Assert().True(decimal.RequireFromString("10000").Equal(report.TotalIncome["Salary"]), "Salary total is %s", report.TotalIncome["Salary"])
	suite.Assert().True(decimal.RequireFromString("8500").Equal(report.NetSavings), "Net savings are %s", report.NetSavings)
}

func (suite *TestSuiteStandard) TestGetYearlyReportInvalidYear() {
	token := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/yearly/abc", nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestReportsRequireAuthentication() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/reports/monthly/2020/1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}
