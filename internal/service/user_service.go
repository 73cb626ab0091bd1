package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
)

const minPasswordLength = 6

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Answer          string
	Phone           string
}

// UpdateProfileInput carries the optional fields of a profile update. Empty
// fields keep their stored values.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UserService handles account registration, login and credential lifecycle.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ForgotPassword(ctx context.Context, email, answer, newPassword string) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService creates a new account service.
func NewUserService(userRepo repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account with a hashed password and the default role.
// Every validation failure short-circuits before any store write.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	switch {
	case in.Name == "":
		return nil, apperrors.NewValidationError("name is required")
	case in.Email == "":
		return nil, apperrors.NewValidationError("email is required")
	case in.Password == "":
		return nil, apperrors.NewValidationError("password is required")
	case in.ConfirmPassword == "":
		return nil, apperrors.NewValidationError("re-enter password")
	case in.Answer == "":
		return nil, apperrors.NewValidationError("answer is required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, apperrors.NewValidationError("passwords do not match")
	}

	existing, err := s.userRepo.FindByNameAndEmail(ctx, in.Name, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		Phone:        in.Phone,
		Answer:       in.Answer,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index on email catches a duplicate registered under a
		// different name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a 7-day identity token.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// ForgotPassword resets the password for the account matching both email and
// security answer.
func (s *userService) ForgotPassword(ctx context.Context, email, answer, newPassword string) error {
	switch {
	case email == "":
		return apperrors.NewValidationError("email is required")
	case answer == "":
		return apperrors.NewValidationError("answer is required")
	case newPassword == "":
		return apperrors.NewValidationError("new password is required")
	}

	user, err := s.userRepo.FindByEmailAndAnswer(ctx, email, answer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// UpdateProfile merges the provided fields over the stored record. A provided
// password is re-hashed; an absent one leaves the stored hash untouched.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*model.User, error) {
	if in.Password != "" && len(in.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password should be at least 6 characters long")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Password != "" {
		hashed, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ListUsers returns the account directory for the admin dashboard.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
