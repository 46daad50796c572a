// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learning_tracker/internal/config"
	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

type authService struct {
	db     *gorm.DB
	users  *repository.UserRepository
	mailer Mailer
	cfg    *config.Config
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:     db,
		users:  users,
		mailer: mailer,
		cfg:    cfg,
	}
}

// Register creates the account and logs it in immediately.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.users.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists")
			return model.NewAppError("DUPLICATE_EMAIL", "This email address is already in use.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An error occurred while processing the password.", "", err)
		}

		user := &model.User{
			ID:           uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
		}
		if err := s.users.Create(ctx, tx, user); err != nil {
			// Unique index on email catches the register/register race.
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "This email address is already in use.", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the account.", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The welcome mail is best-effort; a mail outage must not undo signup.
	subject := "Welcome to Learning Tracker"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Add your first language and start logging study sessions.\n", newUser.Name)
	if mailErr := s.mailer.Send(ctx, newUser.Email, subject, body); mailErr != nil {
		logger.Warn("Failed to send welcome email", "error", mailErr)
	}

	return s.issueToken(ctx, newUser)
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.users.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Same message as a bad password: no account enumeration.
			return nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrUnauthorized)
		}
		logger.Error("Failed to find user by email", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrUnauthorized)
	}

	return s.issueToken(ctx, user)
}

func (s *authService) issueToken(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiryHours) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue the access token.", "", err)
	}

	return &model.AuthResponse{
		AccessToken: signed,
		User:        user.ToResponse(),
	}, nil
}
