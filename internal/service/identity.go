package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/payout"
	"lerida/internal/repository"
)

// IdentityService manages accounts and the single session pointer.
// Authentication is simulated: registering or logging in just moves the
// session pointer, passwords are never checked or stored.
type IdentityService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
}

func NewIdentityService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository) *IdentityService {
	return &IdentityService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Register creates an account and logs it in. The display name defaults
// to the email local part.
func (s *IdentityService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	user := &models.User{
		ID:    "user_" + uuid.New().String(),
		Email: req.Email,
		Name:  strings.SplitN(req.Email, "@", 2)[0],
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Set(ctx, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

// Login starts a session for any registered email. The password is
// accepted and ignored.
func (s *IdentityService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.sessionRepo.Set(ctx, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// Current resolves the logged-in user from the session pointer
func (s *IdentityService) Current(ctx context.Context) (*models.User, error) {
	email, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// UpdateProfile applies name and bank-details changes. Setting bank
// details always derives a fresh routing code; clearing removes both.
func (s *IdentityService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	switch {
	case req.BankDetails != nil:
		user.BankDetails = req.BankDetails
		user.RoutingCode = payout.NewRoutingCode(payout.KindUser)
	case req.ClearBankDetails:
		user.BankDetails = nil
		user.RoutingCode = ""
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
