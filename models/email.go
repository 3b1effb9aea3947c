package models

import "time"

// Email is an inbound contact-form submission. The wire shape uses camelCase
// serviceType while the column stays service_type; the json/gorm tags below are
// the single place that mapping lives. Rows are immutable once received.
type Email struct {
	ID          int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" db:"name" gorm:"type:text"`
	Email       string    `json:"email" db:"email" gorm:"type:text"`
	ServiceType string    `json:"serviceType" db:"service_type" gorm:"column:service_type;type:text"`
	Message     string    `json:"message" db:"message" gorm:"type:text"`
	Date        time.Time `json:"date" db:"date"`
	Status      string    `json:"status" db:"status" gorm:"type:text"`
}
