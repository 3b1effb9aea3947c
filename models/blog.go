package models

import "gorm.io/datatypes"

// BlogComment is a public comment attached to a blog post.
type BlogComment struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Blog represents a blog post with optional public engagement data. Comments
// and emoji reactions live in JSON columns rather than separate tables.
type Blog struct {
	ID             int                                `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title          string                             `json:"title" db:"title" gorm:"type:text;not null"`
	Description    string                             `json:"description" db:"description" gorm:"type:text"`
	Category       string                             `json:"category" db:"category" gorm:"type:text"`
	Excerpt        string                             `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content        string                             `json:"content" db:"content" gorm:"type:text"`
	Image          string                             `json:"image" db:"image" gorm:"type:text"`
	Date           string                             `json:"date" db:"date" gorm:"type:text"`
	AllowComments  *bool                              `json:"allowComments" db:"allow_comments" gorm:"not null;default:true"`
	Comments       datatypes.JSONSlice[BlogComment]   `json:"comments" db:"comments"`
	EmojiReactions datatypes.JSONType[map[string]int] `json:"emojiReactions" db:"emoji_reactions"`
	Technologies   StringList                         `json:"technologies" db:"technologies"`
}
