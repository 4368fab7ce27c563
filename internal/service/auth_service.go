package service

import (
	"errors"
	"fmt"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
	"github.com/alexdelx20/WeddingDream/pkg/bcrypt"
	"github.com/alexdelx20/WeddingDream/pkg/email"
	jwtPkg "github.com/alexdelx20/WeddingDream/pkg/jwt"
)

type AuthService struct {
	store        storage.Storage
	emailService *email.EmailService
}

func NewAuthService(store storage.Storage, emailService *email.EmailService) *AuthService {
	return &AuthService{
		store:        store,
		emailService: emailService,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.store.GetUserByUsername(req.Username); err == nil {
		return nil, errors.New("username already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if _, err := s.store.GetUserByEmail(req.Email); err == nil {
		return nil, errors.New("email already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	if s.emailService != nil {
		go s.emailService.SendWelcomeEmail(user.Email, user.Username)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
