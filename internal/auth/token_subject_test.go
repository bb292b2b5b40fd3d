package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeParser map[string]uint

func (f fakeParser) ParseToken(token string) (uint, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return 0, errors.New("bad token")
}

func runTokenSubject(t *testing.T, header, value string) (uint, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		got    uint
		exists bool
	)
	r := gin.New()
	r.Use(TokenSubjectMiddleware(fakeParser{"good": 7}))
	r.GET("/", func(c *gin.Context) {
		v, ok := c.Get(TokenUserIDKey)
		exists = ok
		if ok {
			got = v.(uint)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	return got, exists
}

func TestTokenSubjectMiddleware(t *testing.T) {
	id, ok := runTokenSubject(t, "X-Auth-Token", "good")
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)

	id, ok = runTokenSubject(t, "Authorization", "Bearer good")
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)

	_, ok = runTokenSubject(t, "X-Auth-Token", "bad")
	assert.False(t, ok, "invalid tokens are ignored, not rejected")

	_, ok = runTokenSubject(t, "", "")
	assert.False(t, ok)
}
