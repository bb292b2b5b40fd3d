package handler

import (
	"bytes"

	"socialnet/backend/internal/config"
	"socialnet/backend/internal/database"
	"socialnet/backend/internal/service"
	"socialnet/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func appConfig() *config.Config {
	if config.AppConfig == nil {
		return config.Defaults()
	}
	return config.AppConfig
}

// Tokens returns the token manager configured from AppConfig.
func Tokens() *jwt.Manager {
	cfg := appConfig()
	return jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL)
}

func authService() *service.AuthService {
	return service.NewAuthService(database.DB, Tokens())
}

func friendService() *service.FriendService {
	return service.NewFriendService(database.DB)
}

func postService() *service.PostService {
	return service.NewPostService(database.DB, appConfig().TxRetries)
}

// bindBody decodes a JSON body into obj. An empty body leaves obj at its zero value.
func bindBody(c *gin.Context, obj any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return errInvalidBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := binding.JSON.BindBody(raw, obj); err != nil {
		return errInvalidBody
	}
	return nil
}
