package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessAssignRole     = "role assigned successfully"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessSendVerifyMail = "verification email sent"
	MessageSuccessVerifyEmail    = "email verified successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedAssignRole     = "failed to assign role"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedSendVerifyMail = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidOccupation    = errors.New("occupation is not one of the allowed values")
	ErrInvalidContactNumber = errors.New("contact number must be digits with an optional + prefix")
	ErrInvalidRole          = errors.New("role must be Supplier or Recipient")
	ErrDuplicateRole        = errors.New("user already holds this role")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		FullName      string `json:"full_name" validate:"required"`
		Occupation    string `json:"occupation"`
		LocationID    uint   `json:"location_id" validate:"required"`
		ContactNumber string `json:"contact_number" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID         uint      `json:"id"`
		FullName   string    `json:"full_name"`
		Occupation string    `json:"occupation"`
		Email      string    `json:"email"`
		CreatedAt  time.Time `json:"created_at"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string   `json:"token"`
		Roles []string `json:"roles"`
	}

	AssignRoleRequest struct {
		Role string `json:"role" validate:"required"`
	}

	UserResponse struct {
		ID            uint      `json:"id"`
		FullName      string    `json:"full_name"`
		Occupation    string    `json:"occupation"`
		LocationID    uint      `json:"location_id"`
		ContactNumber string    `json:"contact_number"`
		Email         string    `json:"email"`
		Verified      bool      `json:"verified"`
		Roles         []string  `json:"roles"`
		CreatedAt     time.Time `json:"created_at"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	VerifyEmailRequest struct {
		Token string `json:"token" validate:"required"`
	}
)
