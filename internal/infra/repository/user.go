package repository

import (
	"context"
	"time"

	"deskbook/internal/infra"
	"deskbook/internal/pkg/pgconv"
	"deskbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active FROM users WHERE email = $1`, email,
	).Scan(&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`,
		userID, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
