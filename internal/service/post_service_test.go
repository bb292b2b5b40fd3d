package service

import (
	"context"
	"sync"
	"testing"

	"socialnet/backend/internal/database/dbtest"
	"socialnet/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostFixture(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	createUser(t, db, 7, "Ann", "Lee")
	createUser(t, db, 9, "Ben", "Kim")
	return NewPostService(db, 3), db
}

func likeRows(t *testing.T, db *gorm.DB, postID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&n).Error)
	return n
}

func storedLikes(t *testing.T, db *gorm.DB, postID uint) int64 {
	t.Helper()
	var post models.Post
	require.NoError(t, db.First(&post, postID).Error)
	return post.LikesCount
}

func TestCreatePostDefaults(t *testing.T) {
	svc, _ := newPostFixture(t)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 7, Content: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, uint(7), post.UserID)
	assert.Equal(t, "hello", post.Content)
	assert.Equal(t, models.PostTypeText, post.PostType)
	assert.Equal(t, []string{}, post.MediaURLs)
	assert.Zero(t, post.LikesCount)
	assert.Zero(t, post.CommentsCount)
}

func TestCreatePostValidation(t *testing.T) {
	svc, _ := newPostFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 7, Content: "  "})
	requireKind(t, err, KindValidation)

	_, err = svc.CreatePost(ctx, CreatePostInput{Content: "hello"})
	requireKind(t, err, KindValidation)
}

func TestCreatePostKeepsMedia(t *testing.T) {
	svc, db := newPostFixture(t)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:    9,
		Content:   "look",
		PostType:  "image",
		MediaURLs: []string{"https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, "image", stored.PostType)
	assert.Equal(t, []string{"https://cdn.example.com/a.png"}, stored.MediaURLs)
}

func TestToggleLikeLikesThenUnlikes(t *testing.T) {
	svc, db := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 7, Content: "hello"})
	require.NoError(t, err)

	res, err := svc.ToggleLike(ctx, 9, post.ID)
	require.NoError(t, err)
	assert.Equal(t, LikeActionLiked, res.Action)
	assert.Equal(t, int64(1), res.LikesCount)
	assert.Equal(t, int64(1), likeRows(t, db, post.ID))

	res, err = svc.ToggleLike(ctx, 9, post.ID)
	require.NoError(t, err)
	assert.Equal(t, LikeActionUnliked, res.Action)
	assert.Equal(t, int64(0), res.LikesCount)
	assert.Equal(t, int64(0), likeRows(t, db, post.ID))
}

func TestToggleLikeParity(t *testing.T) {
	svc, db := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 7, Content: "hello"})
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		res, err := svc.ToggleLike(ctx, 9, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i%2), res.LikesCount)
	}
	assert.Equal(t, int64(1), storedLikes(t, db, post.ID))
	assert.Equal(t, int64(1), likeRows(t, db, post.ID))
}

func TestToggleLikeConcurrentDistinctUsers(t *testing.T) {
	svc, db := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 7, Content: "hello"})
	require.NoError(t, err)

	const users = 8
	for id := uint(100); id < 100+users; id++ {
		createUser(t, db, id, "Fan", "Club")
	}

	var wg sync.WaitGroup
	errs := make(chan error, users)
	for id := uint(100); id < 100+users; id++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := svc.ToggleLike(ctx, userID, post.ID)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(users), storedLikes(t, db, post.ID))
	assert.Equal(t, int64(users), likeRows(t, db, post.ID))
}

func TestToggleLikeConcurrentSamePair(t *testing.T) {
	svc, db := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 7, Content: "hello"})
	require.NoError(t, err)

	const toggles = 10
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ToggleLike(ctx, 9, post.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(toggles%2), storedLikes(t, db, post.ID))
	assert.Equal(t, likeRows(t, db, post.ID), storedLikes(t, db, post.ID))
}

func TestToggleLikeErrors(t *testing.T) {
	svc, _ := newPostFixture(t)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, 9, 12345)
	requireKind(t, err, KindNotFound)

	_, err = svc.ToggleLike(ctx, 0, 1)
	requireKind(t, err, KindValidation)
}

func TestAddComment(t *testing.T) {
	svc, _ := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 7, Content: "hello"})
	require.NoError(t, err)

	count, err := svc.AddComment(ctx, 9, post.ID, "nice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.AddComment(ctx, 7, post.ID, "thanks")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = svc.AddComment(ctx, 9, post.ID, " ")
	requireKind(t, err, KindValidation)

	_, err = svc.AddComment(ctx, 9, 999, "nice")
	requireKind(t, err, KindNotFound)
}

func TestRepost(t *testing.T) {
	svc, db := newPostFixture(t)
	ctx := context.Background()

	original, err := svc.CreatePost(ctx, CreatePostInput{
		UserID:    7,
		Content:   "hello",
		PostType:  "image",
		MediaURLs: []string{"https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)
	_, err = svc.ToggleLike(ctx, 9, original.ID)
	require.NoError(t, err)

	repost, err := svc.Repost(ctx, 9, original.ID)
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, repost.ID)
	assert.Equal(t, uint(9), repost.UserID)
	assert.Equal(t, "hello", repost.Content)
	assert.Equal(t, "image", repost.PostType)
	assert.Equal(t, []string{"https://cdn.example.com/a.png"}, repost.MediaURLs)
	assert.Zero(t, repost.LikesCount)
	assert.Zero(t, repost.CommentsCount)

	assert.Equal(t, int64(1), storedLikes(t, db, original.ID))
}

func TestRepostMissingOriginal(t *testing.T) {
	svc, db := newPostFixture(t)

	_, err := svc.Repost(context.Background(), 9, 4242)
	requireKind(t, err, KindNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListPosts(t *testing.T) {
	svc, _ := newPostFixture(t)
	ctx := context.Background()

	var ids []uint
	for _, in := range []CreatePostInput{
		{UserID: 7, Content: "first"},
		{UserID: 9, Content: "second"},
		{UserID: 7, Content: "third"},
	} {
		post, err := svc.CreatePost(ctx, in)
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}
	_, err := svc.ToggleLike(ctx, 9, ids[2])
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx, ListPostsFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, ids[2], posts[0].ID)
	assert.Equal(t, ids[0], posts[2].ID)
	assert.Equal(t, "Ann", posts[0].User.FirstName)
	assert.Equal(t, int64(1), posts[0].LikesCount)

	posts, err = svc.ListPosts(ctx, ListPostsFilter{UserID: 7})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, uint(7), p.UserID)
	}

	posts, err = svc.ListPosts(ctx, ListPostsFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, ids[1], posts[0].ID)

	_, err = svc.ListPosts(ctx, ListPostsFilter{Offset: -1})
	requireKind(t, err, KindValidation)
}
