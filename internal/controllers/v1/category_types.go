package v1

import (
	"github.com/fintrack/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string                 `json:"name" binding:"required" example:"Books"` // Name of the category
	Type models.TransactionType `json:"type" example:"EXPENSE"`                  // Type of all transactions in this category
}

// Category is the API view of a category.
type Category struct {
	Name     string                 `json:"name" example:"Books"`   // Name of the category
	Type     models.TransactionType `json:"type" example:"EXPENSE"` // Type of all transactions in this category
	IsCustom bool                   `json:"isCustom" example:"true"` // False for system default categories
}

func newCategory(model models.Category) Category {
	return Category{
		Name:     model.Name,
		Type:     model.Type,
		IsCustom: model.IsCustom(),
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                            // List of categories
	Error *string    `json:"error" example:"this category name is already in use"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                            // Data for the category
	Error *string   `json:"error" example:"this category name is already in use"` // The error, if any occurred
}
