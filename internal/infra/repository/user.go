package repository

import (
	"context"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/infra/repository/converter"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO users (id, username, email, password_hash, role, pincode, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateUserSQL = `
UPDATE users SET username = $2, email = $3, pincode = $4, updated_at = $5
WHERE id = $1`

	findUserByIDSQL       = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	lockUserByIDSQL       = findUserByIDSQL + ` FOR UPDATE`
	findUserByUsernameSQL = `SELECT ` + converter.UserColumns + ` FROM users WHERE username = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(),
		u.Username().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		converter.UserPincodeToInfra(u),
		u.CreatedAt(),
		u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, updateUserSQL,
		u.ID(),
		u.Username().Value(),
		u.Email().Value(),
		converter.UserPincodeToInfra(u),
		u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, "failed to find user by ID", findUserByIDSQL, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, "failed to find user by username", findUserByUsernameSQL, username)
}

func (r *UserRepository) LockByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, "failed to lock user", lockUserByIDSQL, id)
}

func (r *UserRepository) findOne(ctx context.Context, msg, query string, arg any) (*user.User, error) {
	var row converter.UserRow
	if err := r.db.QueryRow(ctx, query, arg).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}

	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user row", err, infra.KindDBFailure)
	}
	return u, nil
}
