package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"socialnet/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

const (
	minPasswordLength = 6
	birthDateLayout   = "2006-01-02"
)

// TokenIssuer signs and verifies the tokens handed out on register and login.
type TokenIssuer interface {
	GenerateToken(userID uint) (string, error)
	ParseToken(token string) (uint, error)
}

// RegisterInput holds the fields accepted by Register.
type RegisterInput struct {
	Phone     string
	Email     string
	Password  string
	FirstName string
	LastName  string
	BirthDate *string
}

// Session is a user together with a freshly issued token.
type Session struct {
	User  models.User
	Token string
}

// AuthService registers users and logs them in.
type AuthService struct {
	db     *gorm.DB
	tokens TokenIssuer
}

func NewAuthService(db *gorm.DB, tokens TokenIssuer) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	phone := strings.TrimSpace(in.Phone)
	email := strings.TrimSpace(in.Email)
	password := strings.TrimSpace(in.Password)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	if phone == "" || email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, ValidationError("All fields are required")
	}
	if !phonePattern.MatchString(strings.ReplaceAll(phone, " ", "")) {
		return nil, ValidationError("Invalid phone format")
	}
	if !emailPattern.MatchString(email) {
		return nil, ValidationError("Invalid email format")
	}
	if len(password) < minPasswordLength {
		return nil, ValidationError(fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	var birthDate *time.Time
	if in.BirthDate != nil && strings.TrimSpace(*in.BirthDate) != "" {
		d, err := time.Parse(birthDateLayout, strings.TrimSpace(*in.BirthDate))
		if err != nil {
			return nil, ValidationError("Invalid birth_date format, expected YYYY-MM-DD")
		}
		birthDate = &d
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		BirthDate:    birthDate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("phone = ? OR email = ?", phone, email).Count(&count).Error; err != nil {
			return fmt.Errorf("look up existing user: %w", err)
		}
		if count > 0 {
			return ConflictError("User with this phone or email already exists")
		}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ConflictError("User with this phone or email already exists")
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(user)
}

// Login authenticates by phone or email.
func (s *AuthService) Login(ctx context.Context, login, password string) (*Session, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return nil, ValidationError("Login and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("phone = ? OR email = ?", login, login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UnauthorizedError("Invalid login or password")
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, UnauthorizedError("Invalid login or password")
	}

	return s.newSession(user)
}

// CheckToken verifies a token's signature and expiry and returns its user ID.
// No session store is consulted.
func (s *AuthService) CheckToken(token string) (uint, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, UnauthorizedError("Token not provided")
	}

	userID, err := s.tokens.ParseToken(token)
	if err != nil {
		return 0, UnauthorizedError("Invalid token")
	}
	return userID, nil
}

func (s *AuthService) newSession(user models.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}
