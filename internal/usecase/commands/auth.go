package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"vehicle-parking/internal/domain/auth"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/pkg/jwt"
	"vehicle-parking/internal/pkg/password"
	"vehicle-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)
	ErrUserExists         = errs.Mark(errs.New("username or email already registered"), errs.ErrConflict)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch user.ProfilePatch) (*user.User, error)
	// EnsureAdmin creates the configured admin account when it does not exist yet.
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	u, err := a.newUser(in, user.RoleUser)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID(), "username", u.Username().Value())
	return u, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, username, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(username, pw)
	if err != nil {
		// same answer as a wrong password to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByUsername(ctx, credentials.Username().Value())
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(found.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(found.ID(), found.Username().Value(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      found.ID(),
		Role:        found.Role(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, patch user.ProfilePatch) (*user.User, error) {
	var updated *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().LockByID(ctx, userID)
		if err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}
		if err := u.UpdateProfile(patch, a.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrUserExists
			}
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Password == "" {
		slog.Info("admin seeding skipped: ADMIN_PASSWORD is empty")
		return nil
	}

	admin, err := a.newUser(RegisterInput{Username: cfg.Username, Email: cfg.Email, Password: cfg.Password}, user.RoleAdmin)
	if err != nil {
		return err
	}

	var created bool
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false
		_, err := tx.Users().FindByUsername(ctx, admin.Username().Value())
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		created = true
		return tx.Users().Create(ctx, admin)
	})
	if err != nil {
		return err
	}

	if created {
		slog.Info("admin user seeded", "username", admin.Username().Value())
	}
	return nil
}

func (a *authCommandsImpl) newUser(in RegisterInput, role user.Role) (*user.User, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, hash, role, a.clock.Now()), nil
}
