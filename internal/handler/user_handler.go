package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
	"github.com/Zayed4321/FoodHouse-Backend/internal/middleware"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/service"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name              string `json:"name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	ReconfirmPassword string `json:"reconfirmPassword" validate:"required"`
	Answer            string `json:"answer" validate:"required"`
	Phone             string `json:"phone"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents a password reset request.
type ForgotPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Answer      string `json:"answer" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UpdateProfileRequest represents a profile update request. All fields are
// optional; absent fields keep their stored values.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// ProfileView is the reduced account view returned on login. Credential
// material is never part of any response.
type ProfileView struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phone  string     `json:"phone"`
	Answer string     `json:"answer"`
	Role   model.Role `json:"role"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    ProfileView `json:"user"`
	Token   string      `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 409 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /users/addUser [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	user, err := h.userService.Register(c.Request().Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ReconfirmPassword,
		Answer:          req.Answer,
		Phone:           req.Phone,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "user is successfully registered",
		"user":    user,
	})
}

// Login godoc
// @Summary Login user
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/userLogin [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	user, token, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: "login successful",
		User: ProfileView{
			Name:   user.Name,
			Email:  user.Email,
			Phone:  user.Phone,
			Answer: user.Answer,
			Role:   user.Role,
		},
		Token: token,
	})
}

// ForgotPassword godoc
// @Summary Reset password using the security answer
// @Tags users
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Reset data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /users/forgot-pass [post]
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	if err := h.userService.ForgotPassword(c.Request().Context(), req.Email, req.Answer, req.NewPassword); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "password changed successfully",
	})
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /users/profile-update [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fail(c, apperrors.ErrInvalidToken)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, apperrors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, apperrors.NewValidationError(err.Error()))
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, service.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "profile is updated successfully",
		"user":    user,
	})
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /users/allUsers [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   users,
	})
}

// AuthProbe godoc
// @Summary Confirm the current token (and role, on the admin route) is valid
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.Response
// @Router /users/user-auth [get]
func (h *UserHandler) AuthProbe(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
