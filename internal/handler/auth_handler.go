package handler

import (
	"net/http"
	"time"

	"socialnet/backend/internal/auth"
	"socialnet/backend/internal/models"
	"socialnet/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// AuthInput is the body of POST /auth. Which fields are read depends on the action.
type AuthInput struct {
	Action    string  `json:"action" example:"register"`
	Phone     string  `json:"phone" example:"+15550001111"`
	Email     string  `json:"email" example:"a@b.com"`
	Password  string  `json:"password" example:"secret1"`
	FirstName string  `json:"first_name" example:"Ada"`
	LastName  string  `json:"last_name" example:"Lovelace"`
	BirthDate *string `json:"birth_date" example:"1990-12-10"`
	Login     string  `json:"login" example:"a@b.com"`
}

// UserResponse is a user's profile as returned by register and login.
type UserResponse struct {
	ID          uint    `json:"id" example:"1"`
	Phone       string  `json:"phone" example:"+15550001111"`
	Email       string  `json:"email" example:"a@b.com"`
	FirstName   string  `json:"first_name" example:"Ada"`
	LastName    string  `json:"last_name" example:"Lovelace"`
	BirthDate   *string `json:"birth_date" example:"1990-12-10"`
	AvatarURL   string  `json:"avatar_url"`
	MediaStatus string  `json:"media_status"`
	Bio         string  `json:"bio"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool         `json:"success" example:"true"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// TokenCheckResponse is returned by check_token.
type TokenCheckResponse struct {
	Valid  bool `json:"valid" example:"true"`
	UserID uint `json:"user_id" example:"1"`
}

func newUserResponse(u models.User) UserResponse {
	var birthDate *string
	if u.BirthDate != nil {
		s := u.BirthDate.Format(time.DateOnly)
		birthDate = &s
	}
	return UserResponse{
		ID:          u.ID,
		Phone:       u.Phone,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		BirthDate:   birthDate,
		AvatarURL:   u.AvatarURL,
		MediaStatus: u.MediaStatus,
		Bio:         u.Bio,
	}
}

// endregion

// Auth godoc
// @Summary      Register, log in or check a token
// @Description  Dispatches on body.action: "register" creates a user, "login" authenticates by phone or email,
// @Description  "check_token" verifies the X-Auth-Token header.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Auth-Token header string false "Token to verify (check_token only)"
// @Param        input body AuthInput true "Action and its fields"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      405  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth [post]
func Auth(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		methodNotAllowed(c)
		return
	}

	var input AuthInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err)
		return
	}

	action, err := parseAuthAction(input.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	svc := authService()
	switch action {
	case AuthRegister:
		session, err := svc.Register(c.Request.Context(), service.RegisterInput{
			Phone:     input.Phone,
			Email:     input.Email,
			Password:  input.Password,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			BirthDate: input.BirthDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Success: true, User: newUserResponse(session.User), Token: session.Token})

	case AuthLogin:
		session, err := svc.Login(c.Request.Context(), input.Login, input.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Success: true, User: newUserResponse(session.User), Token: session.Token})

	case AuthCheckToken:
		userID, err := svc.CheckToken(auth.TokenFromRequest(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, TokenCheckResponse{Valid: true, UserID: userID})
	}
}
