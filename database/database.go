package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo       *ProjectRepo
	blogRepo          *BlogRepo
	certificationRepo *CertificationRepo
	emailRepo         *EmailRepo
	categoryRepo      *CategoryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:       NewProjectRepo(db),
		blogRepo:          NewBlogRepo(db),
		certificationRepo: NewCertificationRepo(db),
		emailRepo:         NewEmailRepo(db),
		categoryRepo:      NewCategoryRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) EmailRepo() *EmailRepo {
	return d.emailRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}
