// Command seed bootstraps the well-known admin, staff and member
// accounts so a fresh deployment can be logged into. Accounts that
// already exist are left untouched.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/config"
	"github.com/ironvale/gymd/internal/models"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
)

type seedAccount struct {
	name  string
	email string
	roles []models.Role
}

var seedAccounts = []seedAccount{
	{name: "Admin", email: "admin@ironvale.gym", roles: []models.Role{models.RoleAdmin}},
	{name: "Front Desk", email: "staff@ironvale.gym", roles: []models.Role{models.RoleStaff}},
	{name: "Member", email: "member@ironvale.gym", roles: []models.Role{models.RoleMember}},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	password := os.Getenv("GYMD_SEED_PASSWORD")
	if password == "" {
		log.Fatal("GYMD_SEED_PASSWORD environment variable is required")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	clk := clock.New()
	uuider := uuid.New()

	for _, account := range seedAccounts {
		now := clk.Now()

		err := users.CreateUser(ctx, &userRepo.CreateUserInput{
			User: &models.User{
				ID:               uuider.NewUUID(),
				Name:             account.name,
				Email:            account.email,
				PasswordHash:     string(hash),
				Roles:            account.roles,
				MembershipStatus: models.MembershipStatusActive,
				Phone:            "000-0000",
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		})
		if err != nil {
			if errors.Is(err, userRepo.ErrEmailTaken) {
				log.Printf("Account %s already exists, skipping", account.email)
				continue
			}
			log.Fatalf("Failed to seed %s: %v", account.email, err)
		}

		log.Printf("Seeded account %s", account.email)
	}
}
