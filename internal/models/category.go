package models

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TransactionType classifies a category and every transaction booked
// against it.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Category groups transactions. A category without an owning user is a
// default category, seeded once at startup and visible to every user. A
// category with an owner is a custom category, visible only to that user.
type Category struct {
	Model
	Name   string          `json:"name" gorm:"uniqueIndex:category_user_name" example:"Groceries"` // Name of the category
	Type   TransactionType `json:"type" example:"EXPENSE"`                                         // Type of all transactions in this category
	UserID *uint64         `json:"-" gorm:"uniqueIndex:category_user_name"`
	User   *User           `json:"-"`
}

// IsDefault reports whether the category is a system default.
func (c Category) IsDefault() bool {
	return c.UserID == nil
}

// IsCustom reports whether the category is owned by a user.
func (c Category) IsCustom() bool {
	return c.UserID != nil
}

// BeforeSave trims whitespace from the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	return nil
}

// AfterSave verifies that the category has a valid type.
func (c *Category) AfterSave(_ *gorm.DB) error {
	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// Categories returns all categories visible to the user: the defaults plus
// the user's own custom categories.
func Categories(userID uint64) ([]Category, error) {
	var categories []Category
	err := DB.
		Where("user_id = ? OR user_id IS NULL", userID).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// ResolveCategory returns the category with this exact name that is visible
// to the user. Names are unique within the visible set, so at most one
// category can match.
func ResolveCategory(name string, userID uint64) (Category, error) {
	var category Category
	err := DB.
		Where("name = ? AND (user_id = ? OR user_id IS NULL)", name, userID).
		First(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// CreateCategory creates a custom category owned by the user.
//
// Default category names are reserved globally, independent of the requested
// type, so a collision with either a default name or one of the user's own
// custom names is rejected.
func CreateCategory(name string, categoryType TransactionType, user User) (Category, error) {
	if !categoryType.Valid() {
		return Category{}, ErrTransactionTypeInvalid
	}

	var count int64
	err := DB.Model(&Category{}).
		Where("name = ? AND (user_id = ? OR user_id IS NULL)", name, user.ID).
		Count(&count).Error
	if err != nil {
		return Category{}, err
	}

	if count > 0 {
		return Category{}, ErrCategoryNameTaken
	}

	category := Category{
		Name:   name,
		Type:   categoryType,
		UserID: &user.ID,
	}

	err = DB.Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// DeleteCategory deletes the user's custom category with this name.
//
// Default categories can never be deleted. The ownership check is defensive,
// resolution is already scoped to the user. A category that is still
// referenced by a transaction stays.
func DeleteCategory(name string, user User) error {
	category, err := ResolveCategory(name, user.ID)
	if err != nil {
		return err
	}

	if category.IsDefault() {
		return ErrDefaultCategoryProtected
	}

	if *category.UserID != user.ID {
		return ErrNoResourceAccess
	}

	inUse, err := TransactionUsesCategory(category.ID)
	if err != nil {
		return err
	}

	if inUse {
		return ErrCategoryInUse
	}

	return DB.Delete(&category).Error
}

// defaultCategories is the fixed set seeded on first startup.
var defaultCategories = []Category{
	{Name: "Salary", Type: TransactionTypeIncome},
	{Name: "Food", Type: TransactionTypeExpense},
	{Name: "Rent", Type: TransactionTypeExpense},
	{Name: "Transportation", Type: TransactionTypeExpense},
	{Name: "Entertainment", Type: TransactionTypeExpense},
	{Name: "Healthcare", Type: TransactionTypeExpense},
	{Name: "Utilities", Type: TransactionTypeExpense},
}

// SeedDefaultCategories creates the default categories if none exist yet.
func SeedDefaultCategories() error {
	var count int64
	err := DB.Model(&Category{}).Where("user_id IS NULL").Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		log.Debug().Msg("default categories already exist, skipping seeding")
		return nil
	}

	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)

	err = DB.Create(&categories).Error
	if err != nil {
		return err
	}

	log.Info().Int("count", len(categories)).Msg("seeded default categories")
	return nil
}
