package readstore

import (
	"context"

	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/pgconv"
	"campustix/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, username, role, is_active, password_hash, last_login_at
		FROM users
		WHERE id = $1`

	return r.scanAuthorizedUser(ctx, q, id)
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, username, role, is_active, password_hash, last_login_at
		FROM users
		WHERE email = $1`

	return r.scanAuthorizedUser(ctx, q, email)
}

func (r *UserReadStore) scanAuthorizedUser(ctx context.Context, q string, arg any) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := r.db.QueryRow(ctx, q, arg).Scan(
		&view.ID, &view.Email, &view.Username, &view.Role, &view.IsActive, &view.PasswordHash, &view.LastLoginAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return view, nil
}

func (r *UserReadStore) FindPublicByID(ctx context.Context, id uuid.UUID) (*queries.BuyerView, error) {
	const q = `SELECT id, username FROM users WHERE id = $1`

	view := &queries.BuyerView{}
	err := r.db.QueryRow(ctx, q, id).Scan(&view.ID, &view.Username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get public user", err)
	}
	return view, nil
}
