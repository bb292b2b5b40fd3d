package models

import "time"

// PostTypeText is the type tag given to posts that do not specify one.
const PostTypeText = "text"

// Post is a piece of content published by a user.
// LikesCount is kept equal to the number of Like rows for the post by every mutation.
type Post struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	Content       string    `gorm:"not null"`
	PostType      string    `gorm:"size:50;not null;default:'text'"`
	MediaURLs     []string  `gorm:"column:media_urls;type:jsonb;serializer:json"`
	LikesCount    int64     `gorm:"not null;default:0"`
	CommentsCount int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// Like marks that a user has liked a post. The (UserID, PostID) pair is unique.
type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint `gorm:"not null;uniqueIndex:idx_likes_user_post;index"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
}
