package readstore

import (
	"context"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/pkg/pgconv"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	userViewColumns    = `id, username, email, role, pincode, created_at, updated_at`
	findUserViewSQL    = `SELECT ` + userViewColumns + ` FROM users WHERE id = $1`
	listUsersByRoleSQL = `SELECT ` + userViewColumns + ` FROM users WHERE role = $1 ORDER BY created_at, username`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var row userViewRow
	if err := r.db.QueryRow(ctx, findUserViewSQL, id).Scan(row.scanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row.toView(), nil
}

func (r *UserReadStore) ListByRole(ctx context.Context, role user.Role) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, listUsersByRoleSQL, role.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	result := []*queries.UserView{}
	for rows.Next() {
		var row userViewRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		result = append(result, row.toView())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return result, nil
}

type userViewRow struct {
	view    queries.UserView
	pincode pgtype.Text
}

func (r *userViewRow) scanTargets() []any {
	return []any{&r.view.ID, &r.view.Username, &r.view.Email, &r.view.Role, &r.pincode, &r.view.CreatedAt, &r.view.UpdatedAt}
}

func (r *userViewRow) toView() *queries.UserView {
	v := r.view
	v.Pincode = pgconv.StringPtrFromPgtype(r.pincode)
	return &v
}
