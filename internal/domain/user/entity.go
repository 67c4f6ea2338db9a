package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	role         Role
	pincode      *Pincode
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	role Role,
	pincode *Pincode,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		pincode:      pincode,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ProfilePatch holds optional profile changes. Nil fields are left untouched.
type ProfilePatch struct {
	Username *string
	Email    *string
	Pincode  *string
}

// UpdateProfile validates every field before applying any of them.
func (u *User) UpdateProfile(p ProfilePatch, now time.Time) error {
	username, email, pincode := u.username, u.email, u.pincode
	if p.Username != nil {
		v, err := NewUsername(*p.Username)
		if err != nil {
			return err
		}
		username = v
	}
	if p.Email != nil {
		v, err := NewEmail(*p.Email)
		if err != nil {
			return err
		}
		email = v
	}
	if p.Pincode != nil {
		v, err := NewPincode(*p.Pincode)
		if err != nil {
			return err
		}
		pincode = &v
	}
	u.username, u.email, u.pincode = username, email, pincode
	u.updatedAt = now
	return nil
}

func (u *User) IsAdmin() bool { return u.role.IsAdmin() }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Pincode() *Pincode    { return u.pincode }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
