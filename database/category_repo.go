package database

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindByType returns all category names for a namespace, sorted alphabetically
func (r *CategoryRepo) FindByType(categoryType string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Category{}).
		Where("type = ?", categoryType).
		Order("name asc").
		Pluck("name", &names).Error
	return names, err
}

// Add inserts a category, silently ignoring a duplicate (type, name) pair
func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}, {Name: "name"}},
		DoNothing: true,
	}).Create(category).Error
}
