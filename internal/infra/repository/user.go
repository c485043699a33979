package repository

import (
	"context"

	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/pgconv"
	"campustix/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, username, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		params.ID, params.Email, params.Username, params.PasswordHash, params.Role,
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email or username already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	const q = `UPDATE users SET last_login_at = now(), updated_at = now() WHERE id = $1`

	if _, err := dbtx.Exec(ctx, q, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
