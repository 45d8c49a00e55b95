package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/profit-gainer/internal/config"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) error
	AuthenticateUser(ctx context.Context, request models.LoginRequest) (*models.UserData, error)
	UpdateUserName(ctx context.Context, userID string, fullName string) error
	GenerateJWT(user *models.UserData) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Users   storage.UsersStorage
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, users storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Users: users}
}

// RegisterUser - регистрация нового пользователя
func (i *Identity) RegisterUser(ctx context.Context, request models.RegisterRequest) error {
	logger.Info("Register user:", request.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	user := models.UserData{
		UserID:       uuid.New().String(),
		FullName:     request.FullName,
		Email:        request.Email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      false,
	}

	err = i.Users.AddUser(ctx, user)
	if err != nil {
		// пользователь уже существует
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", request.Email)
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", request.Email, err)
		return err
	}
	return nil
}

// AuthenticateUser - аутентификация пользователя по email и паролю
func (i *Identity) AuthenticateUser(ctx context.Context, request models.LoginRequest) (*models.UserData, error) {
	logger.Info("Authenticate user", request.Email)

	user, err := i.Users.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", request.Email)
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		logger.Warn("Invalid password", request.Email)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", request.Email)
	return user, nil
}

// UpdateUserName - смена отображаемого имени пользователя
func (i *Identity) UpdateUserName(ctx context.Context, userID string, fullName string) error {
	return i.Users.UpdateUserName(ctx, userID, fullName)
}

// GenerateJWT - создание строки JWT токена с идентификатором и ролью
func (i *Identity) GenerateJWT(user *models.UserData) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"user_id":  user.UserID,
		"username": user.Email,
		"is_admin": user.IsAdmin,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
