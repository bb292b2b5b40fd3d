package models

import "time"

// User represents a registered member of the network.
type User struct {
	ID           uint       `gorm:"primaryKey"`
	Phone        string     `gorm:"size:32;uniqueIndex;not null"`
	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100;not null"`
	BirthDate    *time.Time `gorm:"type:date"`
	AvatarURL    string     `gorm:"size:512"`
	Online       bool       `gorm:"not null;default:false"`
	MediaStatus  string     `gorm:"size:255"`
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
