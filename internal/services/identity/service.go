package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/models"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
)

// claims is the token payload. Role is decoded as `any` because
// credentials in the wild carry it either as a single string or as an
// array of strings; normalizeRoles folds both into one representation.
type claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  any    `json:"role"`
	jwt.RegisteredClaims
}

// service implements the Service interface
type service struct {
	userRepo userRepo.Repository
	clock    clock.Clock
	uuid     uuid.UUID
	secret   []byte
	tokenTTL time.Duration
}

// New creates a new identity service
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

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &service{
		userRepo: cfg.UserRepo,
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
		secret:   []byte(cfg.Secret),
		tokenTTL: ttl,
	}, nil
}

// Register creates a new member account and issues a token
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrValidation)
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if len(input.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()

	u := &models.User{
		ID:               s.uuid.NewUUID(),
		Name:             input.Name,
		Email:            strings.ToLower(input.Email),
		PasswordHash:     string(hash),
		Roles:            []models.Role{models.RoleMember},
		MembershipStatus: models.MembershipStatusPending,
		Phone:            input.Phone,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.userRepo.CreateUser(ctx, &userRepo.CreateUserInput{User: u})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	token, err := s.mintToken(u)
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{User: u, Token: token}, nil
}

// Login verifies credentials and issues a token
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.userRepo.GetUserByEmail(ctx, &userRepo.GetUserByEmailInput{
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			// A missing account and a wrong password are
			// indistinguishable to the caller.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.mintToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: u, Token: token}, nil
}

// VerifyToken validates a bearer token and returns the decoded identity
func (s *service) VerifyToken(ctx context.Context, input *VerifyTokenInput) (*VerifyTokenOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(input.Token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &VerifyTokenOutput{
		Identity: &models.Identity{
			ID:    c.Subject,
			Name:  c.Name,
			Email: c.Email,
			Roles: normalizeRoles(c.Role),
		},
	}, nil
}

func (s *service) mintToken(u *models.User) (string, error) {
	now := s.clock.Now()

	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:  u.Name,
		Email: u.Email,
		Role:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// normalizeRoles folds the duck-typed role claim into a canonical set.
// Unknown role values are dropped rather than granted.
func normalizeRoles(raw any) []models.Role {
	var candidates []string

	switch v := raw.(type) {
	case string:
		candidates = []string{v}
	case []string:
		candidates = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				candidates = append(candidates, s)
			}
		}
	}

	roles := make([]models.Role, 0, len(candidates))
	seen := make(map[models.Role]struct{}, len(candidates))
	for _, c := range candidates {
		r := models.Role(c)
		if !models.ValidRole(r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}

	return roles
}
