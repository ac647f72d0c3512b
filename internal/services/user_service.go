package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
	"estateBack/utils"
)

// UserService implements the mock authentication flow: any credentials are
// accepted and the role is derived solely from the configured admin email.
// The server still issues signed tokens so mutating endpoints can verify
// the caller instead of trusting client-side flags.
type UserService struct {
	UserRepo   repositories.UserRepository
	Tokens     *utils.Manager
	AdminEmail string
	TokenTTL   time.Duration
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	if req.Email == "" {
		return models.AuthResponse{}, &models.ValidationError{Field: "email", Message: "Email is required"}
	}
	if req.Name == "" {
		req.Name = nameFromEmail(req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, err
	}
	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         s.roleFor(req.Email),
		PasswordHash: string(hash),
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if errors.Is(err, models.ErrDuplicateEmail) {
		// Mock flow: a repeated sign-up just signs the user back in.
		created, err = s.UserRepo.GetUserByEmail(ctx, req.Email)
	}
	if err != nil {
		return models.AuthResponse{}, err
	}
	return s.issueToken(created)
}

// SignIn accepts any email/password pair. Unknown emails get a user record
// created on the fly, mirroring the simulated login this replaces.
func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	if req.Email == "" {
		return models.AuthResponse{}, &models.ValidationError{Field: "email", Message: "Email is required"}
	}

	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		user = models.User{
			ID:    uuid.NewString(),
			Name:  nameFromEmail(req.Email),
			Email: req.Email,
			Role:  s.roleFor(req.Email),
		}
		user, err = s.UserRepo.CreateUser(ctx, user)
	}
	if err != nil {
		return models.AuthResponse{}, err
	}
	return s.issueToken(user)
}

func (s *UserService) issueToken(user models.User) (models.AuthResponse, error) {
	token, err := s.Tokens.NewJWT(user.ID, user.Role, s.TokenTTL)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{User: user, AccessToken: token}, nil
}

func (s *UserService) roleFor(email string) string {
	if strings.EqualFold(email, s.AdminEmail) {
		return models.RoleAdmin
	}
	return models.RoleUser
}

func nameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return "User"
}
