package request

import (
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/pkg/patch"
	"vehicle-parking/internal/usecase/commands"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateMeRequest treats blank strings the same as absent fields.
type UpdateMeRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Pincode  *string `json:"pincode"`
}

func (r *UpdateMeRequest) ToDomain() user.ProfilePatch {
	return user.ProfilePatch{
		Username: patch.TrimmedOrNil(r.Username),
		Email:    patch.TrimmedOrNil(r.Email),
		Pincode:  patch.TrimmedOrNil(r.Pincode),
	}
}
