//go:build unit || e2e

package builder

import (
	reqdto "deskbook/internal/handler/dto/request"
	"deskbook/internal/pkg/password"
	"deskbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Password: "password123",
		Role:     "employee",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildSnapshot() (*commands.UserSnapshot, error) {
	hash, err := password.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	return &commands.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: hash,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}, nil
}
