//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Pincode      *string
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "driver01",
		Email:        "driver01@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
		Now:          time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	usr := user.NewUser(username, email, u.PasswordHash, role, u.Now)
	if u.Pincode != nil {
		if err := usr.UpdateProfile(user.ProfilePatch{Pincode: u.Pincode}, u.Now); err != nil {
			return nil, err
		}
	}
	return usr, nil
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Pincode:   u.Pincode,
		CreatedAt: u.Now,
		UpdatedAt: u.Now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPincode(pincode string) *UserBuilder {
	u.Pincode = &pincode
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
