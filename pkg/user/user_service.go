package user

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/internal/utils"
	"FoodBridge-Backend/internal/utils/mailing"
	"FoodBridge-Backend/pkg/jwt"
	"FoodBridge-Backend/pkg/location"
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Digits with an optional leading +, matching the contact number column.
var contactNumberPattern = regexp.MustCompile(`^\+?[0-9]+$`)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		AssignRole(ctx context.Context, userID uint, req domain.AssignRoleRequest) error
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error
	}

	userService struct {
		userRepository     UserRepository
		locationRepository location.LocationRepository
		jwtService         jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, locationRepository location.LocationRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:     userRepository,
		locationRepository: locationRepository,
		jwtService:         jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	occupation := entities.Occupation(req.Occupation)
	if !occupation.Valid() {
		return domain.RegisterResponse{}, domain.ErrInvalidOccupation
	}

	if !contactNumberPattern.MatchString(req.ContactNumber) {
		return domain.RegisterResponse{}, domain.ErrInvalidContactNumber
	}

	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	if _, err := s.locationRepository.GetLocationByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RegisterResponse{}, domain.ErrLocationNotFound
		}
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		FullName:      req.FullName,
		Occupation:    occupation,
		LocationID:    req.LocationID,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Password:      string(hashed),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		// a concurrent registration can still lose the unique-index race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:         user.ID,
		FullName:   user.FullName,
		Occupation: string(user.Occupation),
		Email:      user.Email,
		CreatedAt:  user.CreatedAt,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	roles, err := s.userRepository.GetRoles(ctx, user.ID)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, string(role))
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID, roleNames),
		Roles: roleNames,
	}, nil
}

func (s *userService) AssignRole(ctx context.Context, userID uint, req domain.AssignRoleRequest) error {
	role := entities.Role(req.Role)
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	held, err := s.userRepository.HasRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if held {
		return domain.ErrDuplicateRole
	}

	if err := s.userRepository.AssignRole(ctx, &entities.UserRole{UserID: userID, Role: role}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRole
		}
		return err
	}

	return nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role.Role))
	}

	return domain.UserResponse{
		ID:            user.ID,
		FullName:      user.FullName,
		Occupation:    string(user.Occupation),
		LocationID:    user.LocationID,
		ContactNumber: user.ContactNumber,
		Email:         user.Email,
		Verified:      user.Verified,
		Roles:         roles,
		CreatedAt:     user.CreatedAt,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenVerifyEmail(user.Email, time.Hour*24)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Confirm your FoodBridge account by clicking <a href=%q>this link</a>. The link expires in 24 hours.</p>",
		user.FullName, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verify your FoodBridge account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, req domain.VerifyEmailRequest) error {
	email, err := s.jwtService.ValidateTokenVerifyEmail(req.Token)
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Verified = true
	return s.userRepository.UpdateUser(ctx, user)
}
