package handler

import (
	"net/http"
	"time"

	"socialnet/backend/internal/models"
	"socialnet/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// PostInput is the body of POST /posts. Which fields are read depends on the action.
type PostInput struct {
	Action    string   `json:"action" example:"create"`
	UserID    ID       `json:"user_id" swaggertype:"integer" example:"7"`
	PostID    ID       `json:"post_id" swaggertype:"integer" example:"12"`
	Content   string   `json:"content" example:"hello"`
	PostType  string   `json:"post_type" example:"text"`
	MediaURLs []string `json:"media_urls"`
}

// PostResponse is a stored post.
type PostResponse struct {
	ID            uint      `json:"id" example:"12"`
	UserID        uint      `json:"user_id" example:"7"`
	Content       string    `json:"content" example:"hello"`
	PostType      string    `json:"post_type" example:"text"`
	MediaURLs     []string  `json:"media_urls"`
	LikesCount    int64     `json:"likes_count" example:"0"`
	CommentsCount int64     `json:"comments_count" example:"0"`
	CreatedAt     time.Time `json:"created_at"`
}

// FeedPostResponse is a post in a listing, with its author's public fields.
type FeedPostResponse struct {
	PostResponse
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

// PostsResponse is returned by GET /posts.
type PostsResponse struct {
	Posts []FeedPostResponse `json:"posts"`
}

// CreatePostResponse is returned by the create and repost actions.
type CreatePostResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty"`
	Post    PostResponse `json:"post"`
}

// LikeResponse is returned by the like action.
type LikeResponse struct {
	Success    bool               `json:"success" example:"true"`
	Action     service.LikeAction `json:"action" example:"liked"`
	LikesCount int64              `json:"likes_count" example:"1"`
}

// CommentResponse is returned by the comment action.
type CommentResponse struct {
	Success       bool   `json:"success" example:"true"`
	Message       string `json:"message"`
	CommentsCount int64  `json:"comments_count" example:"1"`
}

func newPostResponse(p models.Post) PostResponse {
	media := p.MediaURLs
	if media == nil {
		media = []string{}
	}
	return PostResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Content:       p.Content,
		PostType:      p.PostType,
		MediaURLs:     media,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
	}
}

// endregion

// Posts godoc
// @Summary      List posts
// @Description  Returns posts newest first with author name and avatar, optionally only those of user_id.
// @Tags         posts
// @Produce      json
// @Param        user_id query int false "Author filter"
// @Param        limit   query int false "Page size" default(20)
// @Param        offset  query int false "Rows to skip" default(0)
// @Success      200  {object}  PostsResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [get]
func Posts(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		listPosts(c)
	case http.MethodPost:
		mutatePosts(c)
	default:
		methodNotAllowed(c)
	}
}

func listPosts(c *gin.Context) {
	userID, err := queryUint(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	limit, offset, err := queryLimitOffset(c)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := postService().ListPosts(c.Request.Context(), service.ListPostsFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := PostsResponse{Posts: make([]FeedPostResponse, 0, len(posts))}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, FeedPostResponse{
			PostResponse: newPostResponse(p),
			FirstName:    p.User.FirstName,
			LastName:     p.User.LastName,
			AvatarURL:    p.User.AvatarURL,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// mutatePosts godoc
// @Summary      Create, like, comment on or repost a post
// @Description  "create" needs user_id and content. "like" toggles user_id's like on post_id.
// @Description  "comment" needs user_id, post_id and content; only the post's comment counter is updated,
// @Description  the text itself is not stored. "repost" copies post_id as a new post of user_id.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        input body PostInput true "Action and its fields"
// @Success      200  {object}  LikeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [post]
func mutatePosts(c *gin.Context) {
	var input PostInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err)
		return
	}

	action, err := parsePostAction(input.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	svc := postService()
	userID, postID := uint(input.UserID), uint(input.PostID)

	switch action {
	case PostCreate:
		post, err := svc.CreatePost(ctx, service.CreatePostInput{
			UserID:    userID,
			Content:   input.Content,
			PostType:  input.PostType,
			MediaURLs: input.MediaURLs,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, CreatePostResponse{Success: true, Post: newPostResponse(*post)})

	case PostLike:
		res, err := svc.ToggleLike(ctx, userID, postID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, LikeResponse{Success: true, Action: res.Action, LikesCount: res.LikesCount})

	case PostComment:
		count, err := svc.AddComment(ctx, userID, postID, input.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, CommentResponse{
			Success:       true,
			Message:       "Comment counted; comment text is not stored",
			CommentsCount: count,
		})

	case PostRepost:
		post, err := svc.Repost(ctx, userID, postID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, CreatePostResponse{Success: true, Message: "Post reposted", Post: newPostResponse(*post)})
	}
}
