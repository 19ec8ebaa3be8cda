package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/models"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	userRepo userRepo.Repository
	clock    clock.Clock
}

// New creates a new accounts service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		userRepo: cfg.UserRepo,
		clock:    cfg.Clock,
	}, nil
}

// ListUsers retrieves all accounts
func (s *service) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	out, err := s.userRepo.ListUsers(ctx, &userRepo.ListUsersInput{})
	if err != nil {
		return nil, err
	}

	return &ListUsersOutput{Users: out.Users}, nil
}

// GetUser retrieves one account by ID
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	u, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetUserOutput{User: u}, nil
}

// UpdateUser applies a patch to an account
func (s *service) UpdateUser(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	u, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		u.Name = *input.Name
	}

	if input.Phone != nil {
		u.Phone = *input.Phone
	}

	if input.MembershipStatus != nil {
		if !models.ValidMembershipStatus(*input.MembershipStatus) {
			return nil, fmt.Errorf("%w: unknown membership status %q", ErrValidation, *input.MembershipStatus)
		}
		u.MembershipStatus = *input.MembershipStatus
	}

	if input.Roles != nil {
		if len(input.Roles) == 0 {
			return nil, fmt.Errorf("%w: role set cannot be empty", ErrValidation)
		}
		for _, r := range input.Roles {
			if !models.ValidRole(r) {
				return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, r)
			}
		}
		u.Roles = input.Roles
	}

	u.UpdatedAt = s.clock.Now()

	err = s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: u})
	if err != nil {
		return nil, err
	}

	return &UpdateUserOutput{User: u}, nil
}

// DeleteUser hard-removes an account
func (s *service) DeleteUser(ctx context.Context, input *DeleteUserInput) error {
	if input == nil || input.UserID == "" {
		return fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	err := s.userRepo.DeleteUser(ctx, &userRepo.DeleteUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func (s *service) getUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return u, nil
}
