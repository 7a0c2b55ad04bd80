package commands

import (
	"context"
	"log/slog"

	"deskbook/internal/domain/user"
	"deskbook/internal/infra"
	"deskbook/internal/pkg/clock"
	"deskbook/internal/pkg/errs"
	"deskbook/internal/pkg/jwt"
	"deskbook/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	snap, err := a.userRepo.FindByEmail(ctx, emailVO.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same surface as a wrong password; do not leak which accounts exist.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, snap.ID, a.clock.Now()); err != nil {
		// Not critical; login already succeeded.
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      snap.ID,
		Role:        role,
		AccessToken: token,
	}, nil
}
