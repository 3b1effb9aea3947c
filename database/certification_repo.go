package database

import (
	"errors"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// FindAll returns all certifications ordered by id ascending
func (r *CertificationRepo) FindAll() ([]*models.Certification, error) {
	var certifications []*models.Certification
	err := r.db.Order("id asc").Find(&certifications).Error
	return certifications, err
}

// FindByID returns the certification with the given id, or nil when no row matches
func (r *CertificationRepo) FindByID(id int) (*models.Certification, error) {
	var certification models.Certification
	err := r.db.First(&certification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

// Add inserts a new certification into the database
func (r *CertificationRepo) Add(certification *models.Certification) error {
	return r.db.Create(certification).Error
}

// Update replaces every column of the row matching certification.ID
func (r *CertificationRepo) Update(certification *models.Certification) error {
	return r.db.Save(certification).Error
}

// Delete removes a certification by id, reporting not-found distinctly
func (r *CertificationRepo) Delete(id int) error {
	result := r.db.Delete(&models.Certification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("certification")
	}
	return nil
}
