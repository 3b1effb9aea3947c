package models

// Certification represents a credential
type Certification struct {
	ID            int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Issuer        string     `json:"issuer" db:"issuer" gorm:"type:text"`
	Date          string     `json:"date" db:"date" gorm:"type:text"`
	Image         string     `json:"image" db:"image" gorm:"type:text"`
	CredentialURL string     `json:"credential_url" db:"credential_url" gorm:"type:text"`
	Description   string     `json:"description" db:"description" gorm:"type:text"`
	Skills        StringList `json:"skills" db:"skills"`
}
