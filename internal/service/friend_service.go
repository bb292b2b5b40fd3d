package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"socialnet/backend/internal/metrics"
	"socialnet/backend/internal/models"

	"gorm.io/gorm"
)

const searchLimit = 20

// Friend is the other user of an accepted edge.
type Friend struct {
	ID        uint
	FirstName string
	LastName  string
	AvatarURL string
	Online    bool
	Status    models.FriendshipStatus
}

// IncomingRequest is a pending edge addressed to the listing user.
type IncomingRequest struct {
	ID        uint
	FirstName string
	LastName  string
	AvatarURL string
	CreatedAt time.Time
}

// UserMatch is a row returned by SearchUsers.
type UserMatch struct {
	ID        uint
	Phone     string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
	Online    bool
}

// FriendService manages friend edges between users.
type FriendService struct {
	db *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db}
}

func requirePair(userID, friendID uint) error {
	if userID == 0 || friendID == 0 {
		return ValidationError("user_id and friend_id are required")
	}
	return nil
}

// SendRequest creates a pending edge from requester to recipient.
// It fails with a conflict if any edge already links the two users.
func (s *FriendService) SendRequest(ctx context.Context, requesterID, recipientID uint) error {
	if err := requirePair(requesterID, recipientID); err != nil {
		return err
	}
	if requesterID == recipientID {
		return ValidationError("Cannot send a friend request to yourself")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", recipientID).Count(&count).Error; err != nil {
			return fmt.Errorf("look up recipient: %w", err)
		}
		if count == 0 {
			return NotFoundError("User not found")
		}

		err := tx.Model(&models.FriendEdge{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				requesterID, recipientID, recipientID, requesterID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("look up friend edge: %w", err)
		}
		if count > 0 {
			return ConflictError("Friend request already exists")
		}

		edge := models.FriendEdge{UserID: requesterID, FriendID: recipientID, Status: models.StatusPending}
		if err := tx.Create(&edge).Error; err != nil {
			switch {
			case errors.Is(err, gorm.ErrDuplicatedKey):
				return ConflictError("Friend request already exists")
			case errors.Is(err, gorm.ErrForeignKeyViolated):
				return NotFoundError("User not found")
			}
			return fmt.Errorf("create friend request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.FriendActions.WithLabelValues("add").Inc()
	return nil
}

// AcceptRequest marks the pending edge sent by friendID to userID as accepted.
// Only the recipient can accept; with reversed roles nothing matches and the call
// succeeds without changes. The returned bool reports whether an edge was updated.
func (s *FriendService) AcceptRequest(ctx context.Context, userID, friendID uint) (bool, error) {
	if err := requirePair(userID, friendID); err != nil {
		return false, err
	}

	var updated bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FriendEdge{}).
			Where("user_id = ? AND friend_id = ? AND status = ?", friendID, userID, models.StatusPending).
			Updates(map[string]interface{}{"status": models.StatusAccepted, "updated_at": time.Now()})
		if res.Error != nil {
			return fmt.Errorf("accept friend request: %w", res.Error)
		}
		updated = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if updated {
		metrics.FriendActions.WithLabelValues("accept").Inc()
	}
	return updated, nil
}

// RejectRequest deletes the pending edge sent by friendID to userID, if any.
func (s *FriendService) RejectRequest(ctx context.Context, userID, friendID uint) (bool, error) {
	if err := requirePair(userID, friendID); err != nil {
		return false, err
	}

	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND friend_id = ? AND status = ?", friendID, userID, models.StatusPending).
			Delete(&models.FriendEdge{})
		if res.Error != nil {
			return fmt.Errorf("reject friend request: %w", res.Error)
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		metrics.FriendActions.WithLabelValues("reject").Inc()
	}
	return deleted, nil
}

// RemoveFriend deletes any edge between the two users, in either direction and any status.
func (s *FriendService) RemoveFriend(ctx context.Context, userA, userB uint) (bool, error) {
	if err := requirePair(userA, userB); err != nil {
		return false, err
	}

	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userA, userB, userB, userA).
			Delete(&models.FriendEdge{})
		if res.Error != nil {
			return fmt.Errorf("remove friend: %w", res.Error)
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		metrics.FriendActions.WithLabelValues("remove").Inc()
	}
	return deleted, nil
}

// ListFriendsAndRequests returns the accepted friends of userID and the pending
// requests addressed to userID, oldest request first.
func (s *FriendService) ListFriendsAndRequests(ctx context.Context, userID uint) ([]Friend, []IncomingRequest, error) {
	if userID == 0 {
		return nil, nil, ValidationError("user_id is required")
	}

	db := s.db.WithContext(ctx)

	friends := []Friend{}
	err := db.Table("friends AS f").
		Select("u.id, u.first_name, u.last_name, u.avatar_url, u.online, f.status").
		Joins("JOIN users u ON u.id = CASE WHEN f.user_id = ? THEN f.friend_id ELSE f.user_id END", userID).
		Where("(f.user_id = ? OR f.friend_id = ?) AND f.status = ?", userID, userID, models.StatusAccepted).
		Order("f.id").
		Scan(&friends).Error
	if err != nil {
		return nil, nil, fmt.Errorf("list friends: %w", err)
	}

	requests := []IncomingRequest{}
	err = db.Table("friends AS f").
		Select("u.id, u.first_name, u.last_name, u.avatar_url, f.created_at").
		Joins("JOIN users u ON u.id = f.user_id").
		Where("f.friend_id = ? AND f.status = ?", userID, models.StatusPending).
		Order("f.created_at, f.id").
		Scan(&requests).Error
	if err != nil {
		return nil, nil, fmt.Errorf("list friend requests: %w", err)
	}

	return friends, requests, nil
}

// SearchUsers matches query against first name, last name (case-insensitive) and phone,
// leaving out excludeUserID.
func (s *FriendService) SearchUsers(ctx context.Context, query string, excludeUserID uint) ([]UserMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ValidationError("search query is required")
	}

	pattern := "%" + strings.ToLower(query) + "%"
	users := []UserMatch{}
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("id, phone, email, first_name, last_name, avatar_url, online").
		Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ?) AND id <> ?",
			pattern, pattern, "%"+query+"%", excludeUserID).
		Order("id").
		Limit(searchLimit).
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
