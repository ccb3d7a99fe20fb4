package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/models"
)

// ErrNotOwner is returned when a record exists but belongs to another user
var ErrNotOwner = errors.New("record does not belong to user")

// ErrUserExists is returned when registering an email that is already taken
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned for unknown email or wrong password
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles business logic
type Service struct {
	repo   Repository
	log    *logrus.Logger
	config *config.Config
	clock  clock.Clock
	sender ReminderSender
}

// NewService initializes a new service
func NewService(repo Repository, log *logrus.Logger, cfg *config.Config, clk clock.Clock, sender ReminderSender) *Service {
	return &Service{repo: repo, log: log, config: cfg, clock: clk, sender: sender}
}

// Register creates a new user with hashed password and returns a signed token
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if _, err := s.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, token, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return user, token, nil
}

func (s *Service) generateToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(s.clock.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
