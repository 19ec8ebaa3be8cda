package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironvale/gymd/internal/models"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	bookingKeyPrefix        = "booking:"
	memberBookingsKeyPrefix = "member_bookings:"
	sessionMembersKeyPrefix = "session_members:"

	// maxTxRetries bounds the optimistic retry loop when a watched
	// key changes under a concurrent transaction
	maxTxRetries = 5
)

var (
	// ErrBookingNotFound is returned when a booking is not found or
	// is not owned by the requesting member
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled is returned when releasing a booking that
	// is already cancelled
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrSessionNotFound is returned when reserving against a missing session
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotActive is returned when reserving against a
	// cancelled or completed session
	ErrSessionNotActive = errors.New("session is not active")

	// ErrSessionFull is returned when reserving against a session
	// with no free slots
	ErrSessionFull = errors.New("session is full")

	// ErrDuplicateBooking is returned when the member already holds
	// an active booking for the session
	ErrDuplicateBooking = errors.New("member already booked this session")
)

func bookingKey(bookingID string) string {
	return bookingKeyPrefix + bookingID
}

func memberBookingsKey(memberID string) string {
	return memberBookingsKeyPrefix + memberID
}

// sessionMembersKey holds the set of member IDs with an active booking
// for a session. It is the uniqueness constraint over
// (memberId, sessionId, sessionType): a session ID already fixes the type.
func sessionMembersKey(sessionID string) string {
	return sessionMembersKeyPrefix + sessionID
}

// Config holds configuration for the Redis booking repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed booking repository
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

// GetBooking retrieves a booking by ID
func (r *redisRepository) GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error) {
	if input == nil || input.BookingID == "" {
		return nil, errors.New("input and booking ID cannot be empty")
	}

	bookingJSON, err := r.client.Get(ctx, bookingKey(input.BookingID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	var record models.Booking
	if err := json.Unmarshal([]byte(bookingJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	return &record, nil
}

// ListMemberBookings retrieves all booking rows for a member, most recent first
func (r *redisRepository) ListMemberBookings(ctx context.Context, input *ListMemberBookingsInput) (*ListMemberBookingsOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, errors.New("input and member ID cannot be empty")
	}

	bookingIDs, err := r.client.ZRevRange(ctx, memberBookingsKey(input.MemberID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking IDs for member: %w", err)
	}

	if len(bookingIDs) == 0 {
		return &ListMemberBookingsOutput{
			Bookings: []*models.Booking{},
		}, nil
	}

	// Fetch all booking documents in one round trip
	pipe := r.client.Pipeline()
	bookingCommands := make([]*redis.StringCmd, 0, len(bookingIDs))

	for _, bookingID := range bookingIDs {
		bookingCommands = append(bookingCommands, pipe.Get(ctx, bookingKey(bookingID)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	records := make([]*models.Booking, 0, len(bookingIDs))
	for i, cmd := range bookingCommands {
		bookingJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get booking %s: %w", bookingIDs[i], err)
		}

		var record models.Booking
		if err := json.Unmarshal([]byte(bookingJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal booking %s: %w", bookingIDs[i], err)
		}

		records = append(records, &record)
	}

	return &ListMemberBookingsOutput{
		Bookings: records,
	}, nil
}

// Reserve atomically decrements a session's capacity and inserts the
// booking row. The duplicate check, the capacity check and both writes
// happen under WATCH, so two concurrent reservations of the last slot
// cannot both commit.
func (r *redisRepository) Reserve(ctx context.Context, input *ReserveInput) (*ReserveOutput, error) {
	if input == nil || input.Booking == nil {
		return nil, errors.New("input and booking cannot be nil")
	}

	record := input.Booking

	if record.ID == "" || record.SessionID == "" || record.MemberID == "" {
		return nil, errors.New("booking ID, session ID and member ID cannot be empty")
	}

	if record.Status != models.BookingStatusBooked {
		return nil, errors.New("reserved booking must have status Booked")
	}

	sessionKey := sessionRepo.Key(record.SessionID)
	membersKey := sessionMembersKey(record.SessionID)

	var reserved *models.Session

	txf := func(tx *redis.Tx) error {
		sessionJSON, err := tx.Get(ctx, sessionKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		var sess models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		if sess.Status != models.SessionStatusActive {
			return ErrSessionNotActive
		}

		if sess.AvailableSlots <= 0 {
			return ErrSessionFull
		}

		alreadyBooked, err := tx.SIsMember(ctx, membersKey, record.MemberID).Result()
		if err != nil {
			return fmt.Errorf("failed to check active members: %w", err)
		}

		if alreadyBooked {
			return ErrDuplicateBooking
		}

		sess.AvailableSlots--
		sess.UpdatedAt = record.BookingDate

		updatedSessionJSON, err := json.Marshal(&sess)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		bookingJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal booking: %w", err)
		}

		// Commit all four writes in one MULTI/EXEC. If a watched key
		// changed, Exec fails with redis.TxFailedErr and the caller
		// retries.
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, updatedSessionJSON, 0)
			pipe.SAdd(ctx, membersKey, record.MemberID)
			pipe.Set(ctx, bookingKey(record.ID), bookingJSON, 0)
			pipe.ZAdd(ctx, memberBookingsKey(record.MemberID), redis.Z{
				Score:  float64(record.BookingDate.Unix()),
				Member: record.ID,
			})
			return nil
		})
		if err != nil {
			return err
		}

		reserved = &sess
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, sessionKey, membersKey)
		if err == nil {
			return &ReserveOutput{
				Booking: record,
				Session: reserved,
			}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("reserve transaction for session %s did not settle: %w", record.SessionID, redis.TxFailedErr)
}

// Release atomically cancels a booking and returns its slot to the
// session. The slot increment is clamped to maxCapacity, and a booking
// whose session was deleted is cancelled without an increment.
func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error) {
	if input == nil || input.BookingID == "" || input.MemberID == "" {
		return nil, errors.New("input, booking ID and member ID cannot be empty")
	}

	bKey := bookingKey(input.BookingID)

	// Read the booking once outside the transaction to learn which
	// session key to watch; everything is re-verified under WATCH.
	record, err := r.GetBooking(ctx, &GetBookingInput{BookingID: input.BookingID})
	if err != nil {
		return nil, err
	}

	if record.MemberID != input.MemberID {
		// Scoped lookup: another member's booking is indistinguishable
		// from a missing one.
		return nil, ErrBookingNotFound
	}

	sessionKey := sessionRepo.Key(record.SessionID)
	membersKey := sessionMembersKey(record.SessionID)

	var (
		released        *models.Booking
		releasedSession *models.Session
	)

	txf := func(tx *redis.Tx) error {
		bookingJSON, err := tx.Get(ctx, bKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to get booking: %w", err)
		}

		var b models.Booking
		if err := json.Unmarshal([]byte(bookingJSON), &b); err != nil {
			return fmt.Errorf("failed to unmarshal booking: %w", err)
		}

		if b.MemberID != input.MemberID {
			return ErrBookingNotFound
		}

		if b.Status == models.BookingStatusCancelled {
			return ErrAlreadyCancelled
		}

		b.Status = models.BookingStatusCancelled
		b.CancelledAt = input.Now
		b.UpdatedAt = input.Now

		updatedBookingJSON, err := json.Marshal(&b)
		if err != nil {
			return fmt.Errorf("failed to marshal booking: %w", err)
		}

		// The session may have been deleted since the booking was
		// made; the booking is still cancelled, only the increment is
		// skipped.
		var (
			sess               *models.Session
			updatedSessionJSON []byte
		)

		sessionJSON, err := tx.Get(ctx, sessionKey).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		if err == nil {
			sess = &models.Session{}
			if err := json.Unmarshal([]byte(sessionJSON), sess); err != nil {
				return fmt.Errorf("failed to unmarshal session: %w", err)
			}

			// Clamp: capacity may have been altered externally, and a
			// release must never push availableSlots above maxCapacity.
			if sess.AvailableSlots < sess.MaxCapacity {
				sess.AvailableSlots++
			}
			sess.UpdatedAt = input.Now

			updatedSessionJSON, err = json.Marshal(sess)
			if err != nil {
				return fmt.Errorf("failed to marshal session: %w", err)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, bKey, updatedBookingJSON, 0)
			pipe.SRem(ctx, membersKey, b.MemberID)
			if updatedSessionJSON != nil {
				pipe.Set(ctx, sessionKey, updatedSessionJSON, 0)
			}
			return nil
		})
		if err != nil {
			return err
		}

		released = &b
		releasedSession = sess
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, bKey, sessionKey, membersKey)
		if err == nil {
			return &ReleaseOutput{
				Booking: released,
				Session: releasedSession,
			}, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("release transaction for booking %s did not settle: %w", input.BookingID, redis.TxFailedErr)
}
