package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	token := suite.registerTestUser()

	transaction := suite.createTestTransaction(token, v1.TransactionEditable{
		Amount:      decimal.RequireFromString("14.50"),
		Date:        types.NewDate(2020, time.January, 15),
		Category:    "Food",
		Description: "Groceries for the week",
	})

	suite.Assert().NotZero(transaction.ID)
	suite.Assert().True(decimal.RequireFromString("14.50").Equal(transaction.Amount))
	suite.Assert().Equal("Food", transaction.Category)
	suite.Assert().Equal(models.TransactionTypeExpense, transaction.Type, "The type must be copied from the category")
	suite.Assert().True(types.NewDate(2020, time.January, 15).Equal(transaction.Date))
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	token := suite.registerTestUser()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Missing amount", v1.TransactionEditable{Date: types.Today(), Category: "Food"}, http.StatusBadRequest},
		{"Missing category", v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Date: types.Today()}, http.StatusBadRequest},
		{"Future date", v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Date: types.Today().AddDate(0, 0, 1), Category: "Food"}, http.StatusBadRequest},
		{"Negative amount", v1.TransactionEditable{Amount: decimal.RequireFromString("-10"), Date: types.Today(), Category: "Food"}, http.StatusBadRequest},
		{"Unknown category", v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Date: types.Today(), Category: "Nope"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "/v1/transactions", tt.body, authHeaders(token))
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsOrderedAndFiltered() {
	token := suite.registerTestUser()

	january := suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Date: types.NewDate(2020, time.January, 15), Category: "Food"})
	march := suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("20"), Date: types.NewDate(2020, time.March, 15), Category: "Rent"})
	june := suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("30"), Date: types.NewDate(2020, time.June, 15), Category: "Food"})

	user := suite.userForToken(token)
	rent, err := models.ResolveCategory("Rent", user.ID)
	suite.Require().Nil(err)

	tests := []struct {
		name     string
		query    string
		expected []uint64
	}{
		{"No filter", "", []uint64{june.ID, march.ID, january.ID}},
		{"Start date", "?startDate=2020-03-15", []uint64{june.ID, march.ID}},
		{"End date", "?endDate=2020-03-15", []uint64{march.ID, january.ID}},
		{"Date range", "?startDate=2020-02-01&endDate=2020-05-31", []uint64{march.ID}},
		{"Category", fmt.Sprintf("?categoryId=%d", rent.ID), []uint64{march.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, "/v1/transactions"+tt.query, nil, authHeaders(token))
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			ids := make([]uint64, 0, len(response.Data))
			for _, transaction := range response.Data {
				ids = append(ids, transaction.ID)
			}

			if len(tt.expected) == 0 {
				if len(ids) != 0 {
					t.Errorf("Expected no transactions, got %v", ids)
				}
				return
			}

			for i, id := range tt.expected {
				if i >= len(ids) || ids[i] != id {
					t.Errorf("Expected transaction IDs %v, got %v", tt.expected, ids)
					return
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidDate() {
	token := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?startDate=someday", nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	token := suite.registerTestUser()
	created := suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%d", created.ID), nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(created.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetTransactionErrors() {
	alice := suite.registerTestUser()
	bob := suite.registerTestUser()
	created := suite.createTestTransaction(alice, v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Category: "Food"})

	tests := []struct {
		name   string
		token  string
		path   string
		status int
	}{
		{"Invalid ID", alice, "/v1/transactions/abc", http.StatusBadRequest},
		{"Not found", alice, fmt.Sprintf("/v1/transactions/%d", created.ID+1000), http.StatusNotFound},
		{"Foreign resource", bob, fmt.Sprintf("/v1/transactions/%d", created.ID), http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, tt.path, nil, authHeaders(tt.token))
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	token := suite.registerTestUser()
	created := suite.createTestTransaction(token, v1.TransactionEditable{
		Amount:   decimal.RequireFromString("10"),
		Date:     types.NewDate(2020, time.March, 15),
		Category: "Food",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%d", created.ID), map[string]string{
		"description": "Dinner",
	}, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Dinner", response.Data.Description)

	// Everything else stays untouched
	suite.Assert().True(created.Amount.Equal(response.Data.Amount))
	suite.Assert().True(created.Date.Equal(response.Data.Date))
	suite.Assert().Equal("Food", response.Data.Category)
}

func (suite *TestSuiteStandard) TestUpdateTransactionCategory() {
	token := suite.registerTestUser()
	created := suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%d", created.ID), map[string]string{
		"category": "Salary",
	}, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Salary", response.Data.Category)
	suite.Assert().Equal(models.TransactionTypeIncome, response.Data.Type, "The type must follow the new category")
}

func (suite *TestSuiteStandard) TestUpdateTransactionNoFields() {
	token := suite.registerTestUser()
	created := suite.createTestTransaction(token, v1.TransactionEditable{
		Amount:   decimal.RequireFromString("10"),
		Date:     types.NewDate(2020, time.March, 15),
		Category: "Food",
	})

	// An empty JSON object changes nothing
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%d", created.ID), map[string]string{}, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(created.Date.Equal(response.Data.Date))
	suite.Assert().True(created.Amount.Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestUpdateTransactionForeign() {
	alice := suite.registerTestUser()
	bob := suite.registerTestUser()
	created := suite.createTestTransaction(alice, v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%d", created.ID), map[string]string{
		"description": "sneaky",
	}, authHeaders(bob))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	token := suite.registerTestUser()
	created := suite.createTestTransaction(token, v1.TransactionEditable{Amount: decimal.RequireFromString("10"), Category: "Food"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%d", created.ID), nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// A second delete does not find the resource anymore
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%d", created.ID), nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	token := suite.registerTestUser()

	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/transactions", nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/transactions/1", nil, authHeaders(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
