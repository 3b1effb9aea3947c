package models

// Project represents a portfolio work item
type Project struct {
	ID           int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title        string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string     `json:"description" db:"description" gorm:"type:text"`
	Category     string     `json:"category" db:"category" gorm:"type:text"`
	Technologies StringList `json:"technologies" db:"technologies"`
	Image        string     `json:"image" db:"image" gorm:"type:text"`
	Date         string     `json:"date" db:"date" gorm:"type:text"`
	Status       string     `json:"status" db:"status" gorm:"type:text"`
	GithubURL    string     `json:"github_url" db:"github_url" gorm:"type:text"`
	DemoURL      string     `json:"demo_url" db:"demo_url" gorm:"type:text"`
}
