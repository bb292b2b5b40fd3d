package handler

import (
	"net/http"
	"time"

	"socialnet/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// FriendInput is the body of POST /friends.
type FriendInput struct {
	Action   string `json:"action" example:"add"`
	UserID   ID     `json:"user_id" swaggertype:"integer" example:"1"`
	FriendID ID     `json:"friend_id" swaggertype:"integer" example:"2"`
}

// FriendResponse is an accepted friend of the listing user.
type FriendResponse struct {
	ID        uint                    `json:"id" example:"2"`
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	AvatarURL string                  `json:"avatar_url"`
	Online    bool                    `json:"online"`
	Status    models.FriendshipStatus `json:"status" example:"accepted"`
}

// FriendRequestResponse is a pending request addressed to the listing user.
type FriendRequestResponse struct {
	ID        uint      `json:"id" example:"3"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// FriendsListResponse is returned by GET /friends?user_id=.
type FriendsListResponse struct {
	Friends  []FriendResponse        `json:"friends"`
	Requests []FriendRequestResponse `json:"requests"`
}

// PublicUserResponse is a user returned by GET /friends?search=.
type PublicUserResponse struct {
	ID        uint   `json:"id" example:"1"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
	Online    bool   `json:"online"`
}

// UserSearchResponse is returned by GET /friends?search=.
type UserSearchResponse struct {
	Users []PublicUserResponse `json:"users"`
}

// endregion

// Friends godoc
// @Summary      List friends or search users
// @Description  With "search", returns up to 20 users whose name or phone matches, excluding user_id.
// @Description  Otherwise returns the accepted friends of user_id and the pending requests sent to them.
// @Tags         friendship
// @Produce      json
// @Param        user_id query int    false "User whose friends are listed"
// @Param        search  query string false "Name or phone fragment"
// @Success      200  {object}  FriendsListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends [get]
func Friends(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		listFriends(c)
	case http.MethodPost:
		mutateFriends(c)
	default:
		methodNotAllowed(c)
	}
}

func listFriends(c *gin.Context) {
	userID, err := queryUint(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}

	svc := friendService()
	if search := c.Query("search"); search != "" {
		matches, err := svc.SearchUsers(c.Request.Context(), search, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		users := make([]PublicUserResponse, 0, len(matches))
		for _, m := range matches {
			users = append(users, PublicUserResponse(m))
		}
		c.JSON(http.StatusOK, UserSearchResponse{Users: users})
		return
	}

	friends, requests, err := svc.ListFriendsAndRequests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := FriendsListResponse{
		Friends:  make([]FriendResponse, 0, len(friends)),
		Requests: make([]FriendRequestResponse, 0, len(requests)),
	}
	for _, f := range friends {
		resp.Friends = append(resp.Friends, FriendResponse(f))
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, FriendRequestResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// mutateFriends godoc
// @Summary      Change a friend relationship
// @Description  "add" sends a request from user_id to friend_id. "accept" and "reject" act on the pending
// @Description  request friend_id sent to user_id. "remove" deletes any relationship between the two.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Param        input body FriendInput true "Action and the two users"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Missing fields, invalid action or request already exists"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /friends [post]
func mutateFriends(c *gin.Context) {
	var input FriendInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err)
		return
	}

	action, err := parseFriendAction(input.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	svc := friendService()
	userID, friendID := uint(input.UserID), uint(input.FriendID)

	switch action {
	case FriendAdd:
		if err := svc.SendRequest(ctx, userID, friendID); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, "Friend request sent")

	case FriendAccept:
		if _, err := svc.AcceptRequest(ctx, userID, friendID); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, "Friend request accepted")

	case FriendReject:
		if _, err := svc.RejectRequest(ctx, userID, friendID); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, "Friend request rejected")

	case FriendRemove:
		if _, err := svc.RemoveFriend(ctx, userID, friendID); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, "Friend removed")
	}
}

