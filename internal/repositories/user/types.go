package user

import "github.com/ironvale/gymd/internal/models"

type CreateUserInput struct {
	User *models.User
}

type SaveUserInput struct {
	User *models.User
}

type GetUserInput struct {
	UserID string
}

type GetUserByEmailInput struct {
	Email string
}

type ListUsersInput struct {
}

type ListUsersOutput struct {
	Users []*models.User
}

type DeleteUserInput struct {
	UserID string
}
