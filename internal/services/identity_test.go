package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/profit-gainer/internal/config"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/denmor86/profit-gainer/internal/storage/mocks"
	"golang.org/x/crypto/bcrypt"

	"go.uber.org/mock/gomock"
)

func TestNewIdentityService(t *testing.T) {
	t.Run("Identity_CreatesService", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockUsers := mocks.NewMockUsersStorage(ctrl)

		config := config.DefaultConfig()
		identity := NewIdentity(config, mockUsers)
		baseService, ok := identity.(*Identity)
		if !ok {
			t.Fatalf("Expected *Identity, got: '%T'", identity)
		}
		if baseService == nil || baseService.JWTAuth == nil {
			t.Errorf("Expected Identity to be initialized with JWTAuth")
		}
		if baseService.Users != mockUsers {
			t.Errorf("Expected Identity to be initialized with provided storage")
		}
	})
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
		request       models.RegisterRequest
	}{
		{
			name: "Register User: Success #1",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
			request:       models.RegisterRequest{FullName: "Max Payne", Email: "mda@example.com", Password: "test_pass"},
		},
		{
			name: "Register User: ErrUserAlreadyExists #2",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			expectedError: ErrUserAlreadyExists,
			request:       models.RegisterRequest{FullName: "Max Payne", Email: "mda@example.com", Password: "test_pass"},
		},
		{
			name: "Register User: Undefined error #3",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(errors.New("failed to add user"))
			},
			expectedError: errors.New("failed to add user"),
			request:       models.RegisterRequest{FullName: "Max Payne", Email: "mda@example.com", Password: "test_pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.RegisterUser(ctx, tc.request)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("test_pass"), bcrypt.DefaultCost)

	testCases := []struct {
		name          string
		mockReturn    func(ctx context.Context, email string) (*models.UserData, error)
		request       models.LoginRequest
		expectedUser  bool
		expectedError error
	}{
		{
			name: "AuthenticateUser Success #1",
			mockReturn: func(ctx context.Context, email string) (*models.UserData, error) {
				return &models.UserData{UserID: "1", Email: "mda@example.com", PasswordHash: string(passwordHash)}, nil
			},
			request:       models.LoginRequest{Email: "mda@example.com", Password: "test_pass"},
			expectedUser:  true,
			expectedError: nil,
		},
		{
			name: "AuthenticateUser UserNotFound #2",
			mockReturn: func(ctx context.Context, email string) (*models.UserData, error) {
				return nil, storage.ErrUserNotFound
			},
			request:       models.LoginRequest{Email: "mda@example.com", Password: "test_pass"},
			expectedUser:  false,
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "AuthenticateUser InvalidPassword #3",
			mockReturn: func(ctx context.Context, email string) (*models.UserData, error) {
				return &models.UserData{UserID: "1", Email: "mda@example.com", PasswordHash: string(passwordHash)}, nil
			},
			request:       models.LoginRequest{Email: "mda@example.com", Password: "wrong_pass"},
			expectedUser:  false,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUsers.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).DoAndReturn(tc.mockReturn)

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, err := identity.AuthenticateUser(ctx, tc.request)

			if (user != nil) != tc.expectedUser {
				t.Errorf("Expected user %v, got %v", tc.expectedUser, user != nil)
			}

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestGenerateJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	identity := NewIdentity(config, mockUsers)

	user := &models.UserData{UserID: "42", Email: "mda@example.com", IsAdmin: true}
	tokenString, err := identity.GenerateJWT(user)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if tokenString == "" {
		t.Fatalf("Expected non-empty token")
	}

	token, err := identity.GetTokenAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("Expected token to decode, got: '%v'", err)
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("Expected claims, got: '%v'", err)
	}
	if claims["user_id"] != "42" {
		t.Errorf("Expected user_id '42', got '%v'", claims["user_id"])
	}
	if claims["is_admin"] != true {
		t.Errorf("Expected is_admin true, got '%v'", claims["is_admin"])
	}
}
