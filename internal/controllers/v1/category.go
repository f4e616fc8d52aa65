package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with name
	{
		r.OPTIONS("/:name", OptionsCategoryDetail)
		r.DELETE("/:name", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			name	path	string	true	"Name of the category"
// @Router			/v1/categories/{name} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get categories
// @Description	Returns the default categories and the user's custom categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	user := currentUser(c)

	categories, err := models.Categories(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Create category
// @Description	Creates a new custom category for the user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		401			{object}	httpError
// @Failure		409			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	user := currentUser(c)

	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	category, err := models.CreateCategory(editable.Name, editable.Type, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	data := newCategory(category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a custom category. Default categories and categories used by transactions cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	path		string	true	"Name of the category"
// @Router			/v1/categories/{name} [delete]
func DeleteCategory(c *gin.Context) {
	user := currentUser(c)

	err := models.DeleteCategory(c.Param("name"), user)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
