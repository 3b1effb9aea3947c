package models

// Category is a named grouping scoped to a content type ("projects", "blogs",
// ...). (Type, Name) pairs are unique; duplicate inserts are ignored.
type Category struct {
	ID   int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Type string `json:"type" db:"type" gorm:"type:text;not null;uniqueIndex:idx_category_type_name"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_category_type_name"`
}
