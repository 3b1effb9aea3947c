package database

import (
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type EmailRepo struct {
	db *gorm.DB
}

func NewEmailRepo(db *gorm.DB) *EmailRepo {
	return &EmailRepo{db}
}

// FindAll returns all emails ordered by date descending (newest first).
// Emails sort by date rather than id, unlike the content resources.
func (r *EmailRepo) FindAll() ([]*models.Email, error) {
	var emails []*models.Email
	err := r.db.Order("date desc").Find(&emails).Error
	return emails, err
}

// Add inserts a new email into the database
func (r *EmailRepo) Add(email *models.Email) error {
	return r.db.Create(email).Error
}

// Delete removes an email by id, reporting not-found distinctly.
// Emails have no update path; they are append-only except for deletion.
func (r *EmailRepo) Delete(id int) error {
	result := r.db.Delete(&models.Email{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("email")
	}
	return nil
}
