package seeker

import (
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// RegisterRequest - DTO for creating a new account
type RegisterRequest struct {
	FullName string       `json:"full_name" validate:"required"`
	Email    kernel.Email `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required,min=8"`
	Role     Role         `json:"role"`
}

// LoginRequest - DTO for authenticating an account
type LoginRequest struct {
	Email    kernel.Email `json:"email" validate:"required,email"`
	Password string       `json:"password" validate:"required"`
}

// AuthResponse - DTO returned after register and login
type AuthResponse struct {
	Token string         `json:"token"`
	User  SeekerResponse `json:"user"`
}

// UpdateProfileRequest - DTO for updating an existing profile
type UpdateProfileRequest struct {
	FullName *string   `json:"full_name,omitempty"`
	Bio      *string   `json:"bio,omitempty"`
	Skills   *[]string `json:"skills,omitempty"`
}

// SeekerResponse - DTO for returning profile data
type SeekerResponse struct {
	ID           kernel.UserID      `json:"id"`
	FullName     string             `json:"full_name"`
	Email        kernel.Email       `json:"email"`
	Role         Role               `json:"role"`
	Skills       []string           `json:"skills"`
	Bio          string             `json:"bio"`
	ResumeURL    kernel.BucketURL   `json:"resume_url,omitempty"`
	PhotoURL     kernel.BucketURL   `json:"photo_url,omitempty"`
	Verification VerificationStatus `json:"verification"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// UploadResponse - DTO returned after a file upload
type UploadResponse struct {
	URL kernel.BucketURL `json:"url"`
}

// ToResponse converts an entity to its response DTO
func ToResponse(s *Seeker) SeekerResponse {
	return SeekerResponse{
		ID:           s.ID,
		FullName:     s.FullName,
		Email:        s.Email,
		Role:         s.Role,
		Skills:       s.Skills,
		Bio:          s.Bio,
		ResumeURL:    s.ResumeURL,
		PhotoURL:     s.PhotoURL,
		Verification: s.Verification,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
