//go:build unit

package user_test

import (
	"testing"
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "driver01", actual.Username().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.False(t, actual.IsAdmin())
		assert.Nil(t, actual.Pincode())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "dots and dashes ok",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("j.doe-01_x") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "space inside",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("john doe") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("pincode validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "six digits",
				mutate: func(b *builder.UserBuilder) { b.WithPincode("560001") },
			},
			{
				name:   "five digits",
				mutate: func(b *builder.UserBuilder) { b.WithPincode("56001") },
				errIs:  user.ErrInvalidPincode,
			},
		})
	})

	t.Run("email is lower-cased", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("Driver@Example.COM").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "driver@example.com", actual.Email().Value())
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	later := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	str := func(s string) *string { return &s }

	t.Run("applies given fields only", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		err = u.UpdateProfile(user.ProfilePatch{Pincode: str("400001")}, later)
		require.NoError(t, err)

		assert.Equal(t, "driver01", u.Username().Value())
		require.NotNil(t, u.Pincode())
		assert.Equal(t, "400001", u.Pincode().Value())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("invalid field leaves user untouched", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		before := *u

		err = u.UpdateProfile(user.ProfilePatch{
			Username: str("renamed"),
			Email:    str("not-an-email"),
		}, later)

		require.ErrorIs(t, err, user.ErrInvalidEmail)
		if diff := cmp.Diff(before, *u, cmp.AllowUnexported(user.User{}, user.Username{}, user.Email{}, user.Pincode{})); diff != "" {
			t.Errorf("User changed (-want +got):\n%s", diff)
		}
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
