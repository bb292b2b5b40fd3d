package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"socialnet/backend/internal/service"
)

// AuthAction selects the operation of a POST /auth request.
type AuthAction string

const (
	AuthRegister   AuthAction = "register"
	AuthLogin      AuthAction = "login"
	AuthCheckToken AuthAction = "check_token"
)

// FriendAction selects the operation of a POST /friends request.
type FriendAction string

const (
	FriendAdd    FriendAction = "add"
	FriendAccept FriendAction = "accept"
	FriendReject FriendAction = "reject"
	FriendRemove FriendAction = "remove"
)

// PostAction selects the operation of a POST /posts request.
type PostAction string

const (
	PostCreate  PostAction = "create"
	PostLike    PostAction = "like"
	PostComment PostAction = "comment"
	PostRepost  PostAction = "repost"
)

var errInvalidAction = service.ValidationError("Invalid action")

func parseAuthAction(s string) (AuthAction, error) {
	switch a := AuthAction(s); a {
	case AuthRegister, AuthLogin, AuthCheckToken:
		return a, nil
	}
	return "", errInvalidAction
}

func parseFriendAction(s string) (FriendAction, error) {
	switch a := FriendAction(s); a {
	case FriendAdd, FriendAccept, FriendReject, FriendRemove:
		return a, nil
	}
	return "", errInvalidAction
}

func parsePostAction(s string) (PostAction, error) {
	switch a := PostAction(s); a {
	case PostCreate, PostLike, PostComment, PostRepost:
		return a, nil
	}
	return "", errInvalidAction
}

// ID is a user or post identifier that accepts both JSON numbers and numeric strings.
// Null, absent and empty values decode to zero.
type ID uint

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
	} else {
		s = string(data)
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*id = ID(v)
	return nil
}
