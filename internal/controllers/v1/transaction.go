package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Books a new transaction against a category. The type is copied from the category.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	user := currentUser(c)

	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction, err := models.CreateTransaction(editable.Amount, editable.Date, editable.Category, editable.Description, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns the user's transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	TransactionListResponse
// @Param			startDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			endDate		query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
// @Param			categoryId	query	uint64	false	"Filter by category ID"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	user := currentUser(c)

	var query TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	filter, err := query.filter()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	transactions, err := models.TransactionsForUser(user.ID, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	user := currentUser(c)

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction, err := models.GetTransaction(id, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Update an existing transaction. Only values to be updated need to be specified. The date cannot be changed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httpError
// @Failure		403			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		uint64						true	"ID of the transaction"
// @Param			transaction	body		TransactionUpdateRequest	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	user := currentUser(c)

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var request TransactionUpdateRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction, err := models.UpdateTransaction(id, models.TransactionUpdate{
		Amount:      request.Amount,
		Description: request.Description,
		Category:    request.Category,
	}, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	user := currentUser(c)

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteTransaction(id, user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// filter converts the bound query parameters into a model filter.
func (f TransactionQueryFilter) filter() (models.TransactionFilter, error) {
	filter := models.TransactionFilter{
		CategoryID: f.CategoryID,
	}

	if f.StartDate != "" {
		date, err := types.ParseDate(f.StartDate)
		if err != nil {
			return models.TransactionFilter{}, httputil.ErrInvalidDate
		}
		filter.StartDate = date
	}

	if f.EndDate != "" {
		date, err := types.ParseDate(f.EndDate)
		if err != nil {
			return models.TransactionFilter{}, httputil.ErrInvalidDate
		}
		filter.EndDate = date
	}

	return filter, nil
}
