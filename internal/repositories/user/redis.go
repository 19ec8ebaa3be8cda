package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironvale/gymd/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix      = "user:"
	userEmailKeyPrefix = "user_email:"
	userIndexKey       = "users"
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when creating a user with an email
	// that is already registered
	ErrEmailTaken = errors.New("email already registered")
)

func userKey(userID string) string {
	return userKeyPrefix + userID
}

func emailKey(email string) string {
	return userEmailKeyPrefix + strings.ToLower(email)
}

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateUser inserts a new user. The email index entry is claimed with
// SETNX first, so two concurrent registrations for one address cannot
// both succeed.
func (r *redisRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	u := input.User

	if u.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	if u.Email == "" {
		return errors.New("user email cannot be empty")
	}

	claimed, err := r.client.SetNX(ctx, emailKey(u.Email), u.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim email index: %w", err)
	}

	if !claimed {
		return ErrEmailTaken
	}

	userJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, userKey(u.ID), userJSON, 0)
	pipe.SAdd(ctx, userIndexKey, u.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// SaveUser re-persists an existing user document. Email is immutable;
// the index entry is left untouched.
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	u := input.User

	if u.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	userJSON, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := r.client.Set(ctx, userKey(u.ID), userJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	return r.getByKey(ctx, userKey(input.UserID))
}

// GetUserByEmail retrieves a user via the email index
func (r *redisRepository) GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	userID, err := r.client.Get(ctx, emailKey(input.Email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve email index: %w", err)
	}

	return r.getByKey(ctx, userKey(userID))
}

func (r *redisRepository) getByKey(ctx context.Context, key string) (*models.User, error) {
	userJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var u models.User
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &u, nil
}

// ListUsers retrieves all user accounts
func (r *redisRepository) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	userIDs, err := r.client.SMembers(ctx, userIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user IDs: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListUsersOutput{
			Users: []*models.User{},
		}, nil
	}

	pipe := r.client.Pipeline()
	userCommands := make([]*redis.StringCmd, 0, len(userIDs))

	for _, userID := range userIDs {
		userCommands = append(userCommands, pipe.Get(ctx, userKey(userID)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users := make([]*models.User, 0, len(userIDs))
	for i, cmd := range userCommands {
		userJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get user %s: %w", userIDs[i], err)
		}

		var u models.User
		if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user %s: %w", userIDs[i], err)
		}

		users = append(users, &u)
	}

	return &ListUsersOutput{
		Users: users,
	}, nil
}

// DeleteUser hard-removes a user and its index entries
func (r *redisRepository) DeleteUser(ctx context.Context, input *DeleteUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	// Need the document to find the email index entry
	u, err := r.GetUser(ctx, &GetUserInput{UserID: input.UserID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, userKey(u.ID))
	pipe.Del(ctx, emailKey(u.Email))
	pipe.SRem(ctx, userIndexKey, u.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
