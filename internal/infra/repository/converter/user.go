package converter

import (
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserColumns matches the scan order of UserRow.ScanTargets.
const UserColumns = "id, username, email, password_hash, role, pincode, created_at, updated_at"

type UserRow struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Pincode      pgtype.Text
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *UserRow) ScanTargets() []any {
	return []any{&r.ID, &r.Username, &r.Email, &r.PasswordHash, &r.Role, &r.Pincode, &r.CreatedAt, &r.UpdatedAt}
}

func UserToDomain(row UserRow) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}

	var pincode *user.Pincode
	if row.Pincode.Valid {
		p, err := user.NewPincode(row.Pincode.String)
		if err != nil {
			return nil, err
		}
		pincode = &p
	}

	return user.ReconstructUser(row.ID, username, email, row.PasswordHash, role, pincode, row.CreatedAt, row.UpdatedAt), nil
}

func UserPincodeToInfra(u *user.User) pgtype.Text {
	if p := u.Pincode(); p != nil {
		v := p.Value()
		return pgconv.StringPtrToPgtype(&v)
	}
	return pgtype.Text{}
}
