package models

// Category labels tasks and meetings. Names are unique with the storage
// collation's case-sensitivity (BINARY on sqlite).
type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Color string `gorm:"size:32" json:"color,omitempty"`

	Tasks    []Task    `gorm:"many2many:category_task" json:"-"`
	Meetings []Meeting `gorm:"many2many:category_meeting" json:"-"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// CreateCategoryRequest represents the data needed to create a category
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// UpdateCategoryRequest is a partial patch. Nil fields are left untouched;
// a present value, including the empty string, is applied.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
