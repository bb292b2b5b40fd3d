package models

import "time"

// FriendshipStatus defines the state of a friend edge.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the recipient accepted the request and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// FriendEdge is a directed friend request from UserID (requester) to FriendID (recipient).
// At most one edge exists per unordered pair of users; see database.Migrate.
type FriendEdge struct {
	ID        uint             `gorm:"primaryKey"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_friends_direction"`
	FriendID  uint             `gorm:"not null;uniqueIndex:idx_friends_direction;index"`
	Status    FriendshipStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (FriendEdge) TableName() string {
	return "friends"
}
